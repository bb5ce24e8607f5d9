package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<div>
  <p>Hello {{.Name}},</p>
  <h3>Your appointment for {{.Service}} is confirmed</h3>
  <p>Looking forward to seeing you on {{.Date}} at {{.Slot}}.</p>
  <p>Amount paid: ${{.Amount}}</p>
  <p>Transaction id: {{.TransactionID}}</p>
  <p>Paid at {{.PaidAt}}</p>
</div>`))

// PaymentConfirmation renders the email sent after a booking is paid.
func PaymentConfirmation(p models.Payment, loc *time.Location) (Message, error) {
	paidAt := p.PaidAt
	if loc != nil {
		paidAt = paidAt.In(loc)
	}

	name := p.Name
	if name == "" {
		name = p.Email
	}

	var buf bytes.Buffer
	err := confirmationTmpl.Execute(&buf, map[string]string{
		"Name":          name,
		"Service":       p.Service,
		"Date":          p.Date,
		"Slot":          p.Slot,
		"Amount":        humanize.FormatFloat("#,###.##", p.Price),
		"TransactionID": p.TransactionID,
		"PaidAt":        paidAt.Format("Jan 2, 2006 3:04 PM MST"),
	})
	if err != nil {
		return Message{}, fmt.Errorf("render confirmation: %w", err)
	}

	return Message{
		To:      p.Email,
		Subject: fmt.Sprintf("Your appointment for %s on %s at %s is confirmed", p.Service, p.Date, p.Slot),
		HTML:    buf.String(),
	}, nil
}
