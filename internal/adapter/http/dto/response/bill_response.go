package response

import (
	"time"

	"pos_payments/internal/domain/entities"
)

type BillResponse struct {
	PaymentID string    `json:"paymentId"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		PaymentID: b.PaymentID,
		Amount:    b.Amount,
		Status:    string(b.Status),
		Timestamp: b.Timestamp,
	}
}

type PaymentRecordResponse struct {
	PaymentID   string           `json:"paymentId"`
	Bill        BillResponse     `json:"bill"`
	Payment     entities.Payment `json:"payment"`
	ProcessedAt time.Time        `json:"processedAt"`
}

func FromPaymentRecord(rec entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		PaymentID:   rec.PaymentID,
		Bill:        FromBill(rec.Bill),
		Payment:     rec.Payment,
		ProcessedAt: rec.ProcessedAt,
	}
}
