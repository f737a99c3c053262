package request

import (
	"strings"

	"pos_payments/internal/domain/entities"
)

type PaymentItemRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PaymentRequest is the POST /pay payload. Field names follow the wire format
// consumed by the point-of-sale clients (camelCase).
//
// `id` may be blank; the use case assigns one. `items` is optional and
// informational unless items carry prices.
type PaymentRequest struct {
	ID         string               `json:"id"`
	PaidAmount float64              `json:"paidAmount"`
	Items      []PaymentItemRequest `json:"items"`
	Type       string               `json:"type"`
}

func (r PaymentRequest) ToPayment() entities.Payment {
	items := make([]entities.PaymentItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.PaymentItem{
			ItemID:   it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return entities.Payment{
		ID:         strings.TrimSpace(r.ID),
		PaidAmount: r.PaidAmount,
		Items:      items,
		Type:       r.Type,
	}
}
