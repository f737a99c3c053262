package interfaces

import (
	"context"

	"pos_payments/internal/domain/entities"
)

// IPaymentRecordRepository abstracts persistence for processed payments.
//
// Contract:
//   - Save overwrites any record stored under the same payment id.
//   - GetByID returns a zero-value record (empty PaymentID) when absent,
//     never an error for a plain miss.

type IPaymentRecordRepository interface {
	Save(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, paymentID string) (entities.PaymentRecord, error)
}
