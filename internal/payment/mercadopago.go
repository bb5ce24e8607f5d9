package payment

import (
	"context"
	"fmt"
	"strings"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPagoProvider creates a checkout preference; its id plays the role
// of the client secret for the Mercado Pago bricks on the client.
type MercadoPagoProvider struct {
	client preference.Client
}

func NewMercadoPagoProvider(accessToken string) (*MercadoPagoProvider, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPagoProvider{client: preference.NewClient(cfg)}, nil
}

func (p *MercadoPagoProvider) CreateIntent(ctx context.Context, in Intent) (string, error) {
	title := in.Description
	if title == "" {
		title = "Barbershop appointment"
	}

	req := preference.Request{
		ExternalReference: in.IdempotencyKey,
		Items: []preference.ItemRequest{
			{
				Title:      title,
				Quantity:   1,
				UnitPrice:  float64(in.Amount) / 100,
				CurrencyID: strings.ToUpper(in.Currency),
			},
		},
	}

	res, err := p.client.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("mercadopago preference: %w", err)
	}
	return res.ID, nil
}
