package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"pos_payments/internal/adapter/persistence/repository"
	"pos_payments/internal/domain/entities"
	"pos_payments/internal/usecase/interfaces"
	mock_interfaces "pos_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInMemoryGateway_Pay(t *testing.T) {
	t.Run("success uses paid amount as bill amount", func(t *testing.T) {
		records := repository.NewPaymentRecordMemoryRepository()
		g := NewInMemoryGateway(records)

		bill, err := g.Pay(context.Background(), entities.Payment{ID: "p1", PaidAmount: 12.5})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bill.PaymentID != "p1" || bill.Amount != 12.5 || bill.Status != entities.BillStatusSuccess {
			t.Fatalf("unexpected bill: %+v", bill)
		}
		if bill.Timestamp.IsZero() {
			t.Fatalf("expected bill timestamp")
		}

		rec, err := records.GetByID(context.Background(), "p1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if rec.PaymentID != "p1" || rec.Bill != bill {
			t.Fatalf("stored record does not match bill: %+v", rec)
		}
	})

	t.Run("negative amount rejected, nothing stored", func(t *testing.T) {
		records := repository.NewPaymentRecordMemoryRepository()
		g := NewInMemoryGateway(records)

		_, err := g.Pay(context.Background(), entities.Payment{ID: "p2", PaidAmount: -5})
		if !errors.Is(err, interfaces.ErrInvalidPayment) {
			t.Fatalf("expected ErrInvalidPayment, got %v", err)
		}
		if records.Len() != 0 {
			t.Fatalf("expected empty store, got %d records", records.Len())
		}
	})

	t.Run("zero amount accepted", func(t *testing.T) {
		records := repository.NewPaymentRecordMemoryRepository()
		g := NewInMemoryGateway(records)

		bill, err := g.Pay(context.Background(), entities.Payment{ID: "p3", PaidAmount: 0})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bill.Amount != 0 || bill.Status != entities.BillStatusSuccess {
			t.Fatalf("unexpected bill: %+v", bill)
		}
	})

	t.Run("item total must reconcile with paid amount", func(t *testing.T) {
		records := repository.NewPaymentRecordMemoryRepository()
		g := NewInMemoryGateway(records)

		p := entities.Payment{
			ID:         "p4",
			PaidAmount: 10,
			Items: []entities.PaymentItem{
				{ItemID: "i1", Name: "apple", Price: 2.5, Quantity: 2},
			},
		}
		_, err := g.Pay(context.Background(), p)
		if !errors.Is(err, interfaces.ErrInvalidPayment) {
			t.Fatalf("expected ErrInvalidPayment on mismatch, got %v", err)
		}

		p.Items = append(p.Items, entities.PaymentItem{ItemID: "i2", Name: "pear", Price: 5, Quantity: 1})
		if _, err := g.Pay(context.Background(), p); err != nil {
			t.Fatalf("expected matching item total to pass, got %v", err)
		}
	})

	t.Run("unpriced items are informational only", func(t *testing.T) {
		records := repository.NewPaymentRecordMemoryRepository()
		g := NewInMemoryGateway(records)

		p := entities.Payment{
			ID:         "p5",
			PaidAmount: 7,
			Items:      []entities.PaymentItem{{ItemID: "i1", Name: "mystery", Quantity: 3}},
		}
		if _, err := g.Pay(context.Background(), p); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("same id overwrites the stored record", func(t *testing.T) {
		records := repository.NewPaymentRecordMemoryRepository()
		g := NewInMemoryGateway(records)

		if _, err := g.Pay(context.Background(), entities.Payment{ID: "p6", PaidAmount: 1}); err != nil {
			t.Fatalf("first pay failed: %v", err)
		}
		if _, err := g.Pay(context.Background(), entities.Payment{ID: "p6", PaidAmount: 2}); err != nil {
			t.Fatalf("second pay failed: %v", err)
		}

		rec, _ := records.GetByID(context.Background(), "p6")
		if rec.Bill.Amount != 2 {
			t.Fatalf("expected last write to win, got amount %v", rec.Bill.Amount)
		}
		if records.Len() != 1 {
			t.Fatalf("expected a single record, got %d", records.Len())
		}
	})

	t.Run("storage failure surfaces as processing error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		g := NewInMemoryGateway(records)

		records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, errors.New("disk on fire"))

		_, err := g.Pay(context.Background(), entities.Payment{ID: "p7", PaidAmount: 1})
		if !errors.Is(err, interfaces.ErrPaymentProcessing) {
			t.Fatalf("expected ErrPaymentProcessing, got %v", err)
		}
		if !strings.Contains(err.Error(), "p7") {
			t.Fatalf("expected error to name the payment id, got %v", err)
		}
	})
}

func TestInMemoryGateway_ConcurrentPays(t *testing.T) {
	records := repository.NewPaymentRecordMemoryRepository()
	g := NewInMemoryGateway(records)

	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			p := entities.Payment{ID: fmt.Sprintf("p-%d", i), PaidAmount: float64(i)}
			if _, err := g.Pay(context.Background(), p); err != nil {
				t.Errorf("pay %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	if records.Len() != n {
		t.Fatalf("expected %d records, got %d", n, records.Len())
	}
	for i := 0; i < n; i++ {
		rec, _ := records.GetByID(context.Background(), fmt.Sprintf("p-%d", i))
		if rec.PaymentID == "" || rec.Bill.Amount != float64(i) {
			t.Fatalf("lost or corrupted record for p-%d: %+v", i, rec)
		}
	}
}
