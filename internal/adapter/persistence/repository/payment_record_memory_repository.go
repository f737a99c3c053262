package repository

import (
	"context"
	"sync"

	"pos_payments/internal/domain/entities"
	"pos_payments/internal/usecase/interfaces"
)

// PaymentRecordMemoryRepository is the default record store: a process-local
// map guarded by an RWMutex so concurrent pay calls cannot lose updates.
// Records do not survive a restart.

type PaymentRecordMemoryRepository struct {
	mutex   sync.RWMutex
	records map[string]entities.PaymentRecord
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordMemoryRepository)(nil)

func NewPaymentRecordMemoryRepository() *PaymentRecordMemoryRepository {
	return &PaymentRecordMemoryRepository{records: make(map[string]entities.PaymentRecord)}
}

func (r *PaymentRecordMemoryRepository) Save(_ context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.records[rec.PaymentID] = rec
	return rec, nil
}

func (r *PaymentRecordMemoryRepository) GetByID(_ context.Context, paymentID string) (entities.PaymentRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.records[paymentID], nil
}

// Len reports the number of stored records.
func (r *PaymentRecordMemoryRepository) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.records)
}
