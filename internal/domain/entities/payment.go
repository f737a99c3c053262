package entities

// PaymentItem is a single purchased line item attached to a payment.
//
// Items are informational: the paid amount is the authoritative total, but
// when items carry prices the item total must reconcile with it (see the
// in-memory gateway validation).

type PaymentItem struct {
	ItemID   string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Payment is a client-submitted request to pay for a set of items.
//
// Identity:
//   - ID is caller-supplied; when blank the use case assigns a UUID before
//     the payment reaches a gateway.

type Payment struct {
	ID         string        `json:"id"`
	PaidAmount float64       `json:"paidAmount"`
	Items      []PaymentItem `json:"items"`
	Type       string        `json:"type"`
}

// ItemsTotal sums the priced line items. Items without a positive price are
// skipped; a missing quantity counts as one unit.
func (p Payment) ItemsTotal() float64 {
	total := 0.0
	for _, it := range p.Items {
		if it.Price <= 0 {
			continue
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += it.Price * float64(qty)
	}
	return total
}
