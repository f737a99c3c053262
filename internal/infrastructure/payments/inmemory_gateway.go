package payments

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"pos_payments/internal/domain/entities"
	"pos_payments/internal/usecase/interfaces"
)

// amountTolerance absorbs float rounding when reconciling the item total
// against the paid amount (half a cent).
const amountTolerance = 0.005

// InMemoryGateway simulates payment processing: it validates the payment,
// produces a deterministic bill with amount = paidAmount and persists the
// payment+bill pair in the record store. Repeated payments with the same id
// overwrite the stored record.

type InMemoryGateway struct {
	records interfaces.IPaymentRecordRepository
}

var _ interfaces.IPaymentGateway = (*InMemoryGateway)(nil)

func NewInMemoryGateway(records interfaces.IPaymentRecordRepository) *InMemoryGateway {
	return &InMemoryGateway{records: records}
}

func (g *InMemoryGateway) Pay(ctx context.Context, p entities.Payment) (entities.Bill, error) {
	if err := validatePayment(p); err != nil {
		return entities.Bill{}, err
	}

	now := time.Now().UTC()
	bill := entities.Bill{
		PaymentID: p.ID,
		Amount:    p.PaidAmount,
		Status:    entities.BillStatusSuccess,
		Timestamp: now,
	}

	rec := entities.PaymentRecord{
		PaymentID:   p.ID,
		Payment:     p,
		Bill:        bill,
		ProcessedAt: now,
	}
	if _, err := g.records.Save(ctx, rec); err != nil {
		log.Printf("[payment][gateway] record store failed payment_id=%s err=%v", p.ID, err)
		return entities.Bill{}, fmt.Errorf("%w: storing payment %s: %v", interfaces.ErrPaymentProcessing, p.ID, err)
	}

	log.Printf("[payment][gateway] in-memory pay success payment_id=%s amount=%.2f", p.ID, bill.Amount)
	return bill, nil
}

// validatePayment enforces the gateway preconditions shared by every backend:
// a non-negative paid amount, and a priced item total that reconciles with it.
// The paid amount stays authoritative for payments without priced items.
func validatePayment(p entities.Payment) error {
	if p.PaidAmount < 0 {
		return fmt.Errorf("%w: paid amount $%v is negative", interfaces.ErrInvalidPayment, p.PaidAmount)
	}
	if total := p.ItemsTotal(); total > 0 && math.Abs(total-p.PaidAmount) > amountTolerance {
		return fmt.Errorf("%w: item total $%.2f does not match paid amount $%v", interfaces.ErrInvalidPayment, total, p.PaidAmount)
	}
	return nil
}
