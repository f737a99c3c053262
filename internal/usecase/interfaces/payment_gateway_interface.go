package interfaces

import (
	"context"
	"errors"

	"pos_payments/internal/domain/entities"
)

var (
	// ErrInvalidPayment marks payments rejected by gateway validation
	// (negative amount, item total mismatch). Maps to 400 at the boundary.
	ErrInvalidPayment = errors.New("invalid payment")

	// ErrPaymentProcessing marks internal faults while processing or storing
	// a payment. Maps to 500 at the boundary.
	ErrPaymentProcessing = errors.New("payment processing failed")
)

// IPaymentGateway abstracts payment backends (in-memory simulation, external
// providers such as Mercado Pago).
//
// Exactly one gateway is active per process; it is selected once at startup
// from the gateway registry and injected into the use case. Gateways wrap
// their failures in ErrInvalidPayment or ErrPaymentProcessing so callers can
// map them without knowing the backend.
type IPaymentGateway interface {
	Pay(ctx context.Context, p entities.Payment) (entities.Bill, error)
}
