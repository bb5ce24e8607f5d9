package appointment

import (
	"context"
	"errors"
	"log"
	"maps"
	"time"

	"github.com/spf13/cast"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/mailer"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
	"github.com/BruksfildServices01/barbershop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type FinalizePaymentInput struct {
	AppointmentID string
	Actor         string
	Payment       models.Document
}

// ======================================================
// USE CASE
// ======================================================

// FinalizePayment records a payment the provider already captured. The
// payment document is written first and is never gated on the booking: an
// unknown appointment only means no booking defaults. The confirmation
// email is best effort and its failure is only logged.
type FinalizePayment struct {
	repo     domain.Repository
	payments domain.PaymentRepository
	mail     mailer.Sender
	audit    *audit.Dispatcher
	tz       string
	now      func() time.Time
}

func NewFinalizePayment(
	repo domain.Repository,
	payments domain.PaymentRepository,
	mail mailer.Sender,
	audit *audit.Dispatcher,
	tz string,
) *FinalizePayment {
	return &FinalizePayment{
		repo:     repo,
		payments: payments,
		mail:     mail,
		audit:    audit,
		tz:       tz,
		now:      time.Now,
	}
}

func (uc *FinalizePayment) Execute(
	ctx context.Context,
	in FinalizePaymentInput,
) (*store.UpdateResult, error) {

	transactionID := domain.Text(in.Payment, domain.FieldTransactionID)

	// --------------------------------------------------
	// 1️⃣ Booking lookup (defaults only)
	// --------------------------------------------------
	ap, err := uc.repo.Get(ctx, in.AppointmentID)
	if err != nil {
		log.Printf("payment without booking defaults appointment=%q: %v", in.AppointmentID, err)
		ap = nil
	}

	// replayed confirmation: nothing to write, no second email
	if ap != nil && domain.AlreadyFinalized(
		domain.Text(ap, domain.FieldPayment),
		domain.Text(ap, domain.FieldTransactionID),
		transactionID,
	) {
		return &store.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	}

	// --------------------------------------------------
	// 2️⃣ Payment record
	// --------------------------------------------------
	doc := withBookingDefaults(in.Payment, ap)
	doc[domain.FieldAppointmentID] = in.AppointmentID
	doc[domain.FieldPaidAt] = uc.now().In(timezone.Location(uc.tz))

	if _, err := uc.payments.CreatePayment(ctx, doc); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Mark appointment paid
	// --------------------------------------------------
	res, err := uc.repo.MarkPaid(ctx, in.AppointmentID, transactionID)
	if errors.Is(err, store.ErrInvalidID) {
		log.Printf("payment recorded for malformed appointment id=%q", in.AppointmentID)
		res, err = &store.UpdateResult{Acknowledged: true}, nil
	}
	if err != nil {
		return nil, err
	}

	p := paymentView(doc)

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   audit.ActionPaymentFinalized,
		Entity:   "appointment",
		EntityID: in.AppointmentID,
		Metadata: map[string]any{
			"transactionId": p.TransactionID,
			"price":         p.Price,
			"matched":       res.MatchedCount,
		},
	})

	// --------------------------------------------------
	// 4️⃣ Confirmation email (best effort)
	// --------------------------------------------------
	uc.notify(ctx, p)

	return res, nil
}

func (uc *FinalizePayment) notify(ctx context.Context, p models.Payment) {
	if p.Email == "" {
		log.Printf("payment email skipped appointment=%s: no recipient", p.AppointmentID)
		return
	}

	msg, err := mailer.PaymentConfirmation(p, timezone.Location(uc.tz))
	if err != nil {
		log.Printf("payment email render failed appointment=%s: %v", p.AppointmentID, err)
		return
	}
	if err := uc.mail.Send(ctx, msg); err != nil {
		log.Printf("payment email failed appointment=%s to=%s: %v", p.AppointmentID, p.Email, err)
		return
	}
	log.Printf("payment email sent appointment=%s to=%s", p.AppointmentID, p.Email)
}

// bookingFields are copied from the appointment when the payment body
// leaves them out.
var bookingFields = []string{
	domain.FieldEmail,
	domain.FieldName,
	domain.FieldService,
	domain.FieldDate,
	domain.FieldSlot,
	domain.FieldPrice,
}

// withBookingDefaults returns a copy of p with blank booking fields taken
// from ap. A nil ap leaves the body untouched.
func withBookingDefaults(p, ap models.Document) models.Document {
	out := maps.Clone(p)
	if out == nil {
		out = models.Document{}
	}
	for _, f := range bookingFields {
		if blank(out[f]) && !blank(ap[f]) {
			out[f] = ap[f]
		}
	}
	return out
}

func blank(v any) bool {
	return v == nil || v == ""
}

func paymentView(doc models.Document) models.Payment {
	paidAt, _ := doc[domain.FieldPaidAt].(time.Time)
	return models.Payment{
		AppointmentID: domain.Text(doc, domain.FieldAppointmentID),
		Email:         domain.Text(doc, domain.FieldEmail),
		Name:          domain.Text(doc, domain.FieldName),
		TransactionID: domain.Text(doc, domain.FieldTransactionID),
		Service:       domain.Text(doc, domain.FieldService),
		Date:          domain.Text(doc, domain.FieldDate),
		Slot:          domain.Text(doc, domain.FieldSlot),
		Price:         cast.ToFloat64(doc[domain.FieldPrice]),
		PaidAt:        paidAt,
	}
}
