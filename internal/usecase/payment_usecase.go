package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"pos_payments/internal/domain/entities"
	"pos_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentRecordNotFound = errors.New("payment record not found")
	ErrInvalidPaymentID      = errors.New("invalid payment id")
)

// IPaymentUseCase is the boundary consumed by the HTTP handlers: it adapts
// decoded payment requests to the active gateway contract and exposes reads
// over the record store.

type IPaymentUseCase interface {
	ProcessPayment(ctx context.Context, p entities.Payment) (entities.Bill, error)
	GetRecordByID(ctx context.Context, paymentID string) (entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
	records interfaces.IPaymentRecordRepository
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase binds the gateway selected at startup. The gateway
// reference is immutable for the process lifetime; switching backends
// requires a restart.
func NewPaymentUseCase(gateway interfaces.IPaymentGateway, records interfaces.IPaymentRecordRepository) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway, records: records}
}

func (u *PaymentUseCase) ProcessPayment(ctx context.Context, p entities.Payment) (entities.Bill, error) {
	if u.gateway == nil {
		return entities.Bill{}, errors.New("payment gateway not configured")
	}

	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = uuid.NewString()
		log.Printf("[payment][usecase] assigned payment_id=%s", p.ID)
	}

	log.Printf("[payment][usecase] process start payment_id=%s amount=%v items=%d", p.ID, p.PaidAmount, len(p.Items))
	bill, err := u.gateway.Pay(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] process failed payment_id=%s err=%v", p.ID, err)
		return entities.Bill{}, err
	}

	log.Printf("[payment][usecase] process success payment_id=%s amount=%v status=%s", bill.PaymentID, bill.Amount, bill.Status)
	return bill, nil
}

func (u *PaymentUseCase) GetRecordByID(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentID
	}

	rec, err := u.records.GetByID(ctx, paymentID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if rec.PaymentID == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	return rec, nil
}
