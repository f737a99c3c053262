package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pos_payments/internal/domain/entities"
	mock_interfaces "pos_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_ProcessPayment(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.ProcessPayment(context.Background(), entities.Payment{ID: "p1", PaidAmount: 10})
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("delegates to active gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, nil)

		want := entities.Bill{PaymentID: "p1", Amount: 12.5, Status: entities.BillStatusSuccess, Timestamp: time.Now().UTC()}
		gateway.EXPECT().Pay(gomock.Any(), entities.Payment{ID: "p1", PaidAmount: 12.5}).Return(want, nil)

		bill, err := uc.ProcessPayment(context.Background(), entities.Payment{ID: "p1", PaidAmount: 12.5})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bill != want {
			t.Fatalf("unexpected bill: %+v", bill)
		}
	})

	t.Run("assigns id when blank", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, nil)

		gateway.EXPECT().Pay(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Bill, error) {
				if p.ID == "" {
					t.Fatalf("expected generated payment id")
				}
				return entities.Bill{PaymentID: p.ID, Amount: p.PaidAmount, Status: entities.BillStatusSuccess}, nil
			},
		)

		bill, err := uc.ProcessPayment(context.Background(), entities.Payment{ID: "  ", PaidAmount: 5})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bill.PaymentID == "" {
			t.Fatalf("expected bill to carry the generated id")
		}
	})

	t.Run("gateway error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, nil)

		boom := errors.New("boom")
		gateway.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(entities.Bill{}, boom)

		_, err := uc.ProcessPayment(context.Background(), entities.Payment{ID: "p1", PaidAmount: 5})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestPaymentUseCase_GetRecordByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.GetRecordByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentUseCase(nil, records)

		records.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.PaymentRecord{}, nil)

		_, err := uc.GetRecordByID(context.Background(), "p1")
		if !errors.Is(err, ErrPaymentRecordNotFound) {
			t.Fatalf("expected ErrPaymentRecordNotFound, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentUseCase(nil, records)

		records.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.PaymentRecord{}, errors.New("db"))

		_, err := uc.GetRecordByID(context.Background(), "p1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentUseCase(nil, records)

		want := entities.PaymentRecord{PaymentID: "p1", Bill: entities.Bill{PaymentID: "p1", Amount: 3, Status: entities.BillStatusSuccess}}
		records.EXPECT().GetByID(gomock.Any(), "p1").Return(want, nil)

		rec, err := uc.GetRecordByID(context.Background(), "p1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if rec.PaymentID != "p1" {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})
}
