package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"pos_payments/internal/domain/entities"
)

func TestFromBill(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Bill{PaymentID: "p1", Amount: 12.5, Status: entities.BillStatusSuccess, Timestamp: now}

	res := FromBill(b)
	if res.PaymentID != "p1" || res.Amount != 12.5 || res.Status != "SUCCESS" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if !res.Timestamp.Equal(now) {
		t.Fatalf("unexpected timestamp: %v", res.Timestamp)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, want := range []string{`"paymentId":"p1"`, `"amount":12.5`, `"status":"SUCCESS"`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("expected %s in %s", want, raw)
		}
	}
}

func TestFromPaymentRecord(t *testing.T) {
	now := time.Now().UTC()
	rec := entities.PaymentRecord{
		PaymentID:   "p1",
		Payment:     entities.Payment{ID: "p1", PaidAmount: 12.5},
		Bill:        entities.Bill{PaymentID: "p1", Amount: 12.5, Status: entities.BillStatusSuccess, Timestamp: now},
		ProcessedAt: now,
	}

	res := FromPaymentRecord(rec)
	if res.PaymentID != "p1" || res.Bill.Amount != 12.5 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if !res.ProcessedAt.Equal(now) {
		t.Fatalf("unexpected processed_at: %v", res.ProcessedAt)
	}
}
