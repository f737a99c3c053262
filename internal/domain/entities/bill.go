package entities

import "time"

// BillStatus represents the outcome of a processed payment.

type BillStatus string

const (
	BillStatusSuccess BillStatus = "SUCCESS"
	BillStatusFailure BillStatus = "FAILURE"
)

// Bill is the authoritative record of a processed payment. A bill is produced
// exactly once per pay call and is immutable after creation.

type Bill struct {
	PaymentID string     `json:"paymentId"`
	Amount    float64    `json:"amount"`
	Status    BillStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
}

// PaymentRecord is the payment+bill pair persisted by a gateway, keyed by
// payment id. Writing a record for an existing id replaces the prior record.
//
// Storage model (DynamoDB option):
//   - PK: payment_id

type PaymentRecord struct {
	PaymentID   string    `json:"payment_id"`
	Payment     Payment   `json:"payment"`
	Bill        Bill      `json:"bill"`
	ProcessedAt time.Time `json:"processed_at"`
}
