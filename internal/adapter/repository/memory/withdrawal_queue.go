package memory

import (
	"container/list"
	"context"
	"sync"

	"github.com/iho/moneyledger/internal/domain"
)

// WithdrawalQueue implements usecase.WithdrawalQueue as an in-memory FIFO.
type WithdrawalQueue struct {
	mu      sync.Mutex
	records *list.List
}

// NewWithdrawalQueue creates an empty WithdrawalQueue.
func NewWithdrawalQueue() *WithdrawalQueue {
	return &WithdrawalQueue{records: list.New()}
}

// Push appends record at the tail.
func (q *WithdrawalQueue) Push(_ context.Context, record domain.WithdrawalRecord) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.records.PushBack(record)

	return nil
}

// Pop removes and returns the head record.
func (q *WithdrawalQueue) Pop(_ context.Context) (domain.WithdrawalRecord, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	front := q.records.Front()
	if front == nil {
		return domain.WithdrawalRecord{}, false, nil
	}

	return q.records.Remove(front).(domain.WithdrawalRecord), true, nil
}

// Len returns the number of queued records.
func (q *WithdrawalQueue) Len(_ context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.records.Len(), nil
}
