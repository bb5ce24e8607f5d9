package payment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/payment"
)

const idempotencyTTL = 24 * time.Hour

type CreateIntentInput struct {
	Requester      string
	Price          any
	Description    string
	IdempotencyKey string
}

// CreateIntent converts the price to minor units and asks the provider for a
// client secret. Repeated calls from the same requester with the same
// idempotency key and amount get the same secret back.
type CreateIntent struct {
	provider payment.Provider
	cache    payment.Cache
	currency string
}

func NewCreateIntent(provider payment.Provider, cache payment.Cache, currency string) *CreateIntent {
	return &CreateIntent{provider: provider, cache: cache, currency: currency}
}

func (uc *CreateIntent) Execute(ctx context.Context, in CreateIntentInput) (string, error) {
	amount, err := payment.ToMinorUnits(in.Price)
	if err != nil {
		return "", err
	}

	key := scopedKey(in.Requester, in.IdempotencyKey, amount)

	if key != "" {
		secret, ok, err := uc.cache.Get(ctx, key)
		if err != nil {
			log.Printf("idempotency lookup failed key=%s: %v", in.IdempotencyKey, err)
		}
		if ok {
			return secret, nil
		}
	}

	secret, err := uc.provider.CreateIntent(ctx, payment.Intent{
		Amount:         amount,
		Currency:       uc.currency,
		Description:    in.Description,
		IdempotencyKey: key,
	})
	if err != nil {
		return "", err
	}

	if key != "" {
		if err := uc.cache.Set(ctx, key, secret, idempotencyTTL); err != nil {
			log.Printf("idempotency store failed key=%s: %v", in.IdempotencyKey, err)
		}
	}
	return secret, nil
}

// scopedKey binds a client idempotency key to its requester and amount so a
// key reused by another user or for another price never hits a stored secret.
// Empty client keys disable deduplication.
func scopedKey(requester, key string, amount int64) string {
	if key == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s\x00%s\x00%d", requester, key, amount)))
	return hex.EncodeToString(sum[:])
}
