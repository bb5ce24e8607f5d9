package payment

import (
	"context"
	"math"

	"github.com/spf13/cast"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

// Intent is a request for a provider-side charge. Amount is in minor units.
type Intent struct {
	Amount         int64
	Currency       string
	Description    string
	IdempotencyKey string
}

// Provider creates a payment intent and returns the secret the client uses
// to complete the charge.
type Provider interface {
	CreateIntent(ctx context.Context, in Intent) (string, error)
}

var ErrInvalidPrice = httperr.ErrBusiness("invalid_price")

// MaxAmount is the largest charge, in minor units, the providers accept.
const MaxAmount int64 = 99999999

// ToMinorUnits converts a loosely typed price (number or numeric string)
// into cents. Results outside (0, MaxAmount] are rejected.
func ToMinorUnits(price any) (int64, error) {
	v, err := cast.ToFloat64E(price)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidPrice
	}

	cents := math.Round(v * 100)
	if cents <= 0 || cents > float64(MaxAmount) {
		return 0, ErrInvalidPrice
	}
	return int64(cents), nil
}
