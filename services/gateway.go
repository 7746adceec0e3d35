package services

import (
	"context"
	"errors"
)

// ErrGateway wraps any failure of the external card processor.
var ErrGateway = errors.New("payment gateway failure")

// PaymentGateway is the narrow contract checkout needs from the card
// processor: open an intent for an amount in minor units and hand back the
// client-side secret. Nothing is persisted on this side.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
