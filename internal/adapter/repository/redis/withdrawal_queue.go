package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iho/moneyledger/internal/domain"
)

// DefaultQueueKey is the list holding unresolved withdrawals.
const DefaultQueueKey = "moneyledger:withdrawals"

// WithdrawalQueue implements usecase.WithdrawalQueue on a Redis list kept
// outside the process. Account balances and the simulated gateway live in
// memory, so the records do not survive a restart of the ledger in any
// useful way.
type WithdrawalQueue struct {
	client *redis.Client
	key    string
}

// NewWithdrawalQueue creates a new WithdrawalQueue. An empty key selects
// DefaultQueueKey.
func NewWithdrawalQueue(client *redis.Client, key string) *WithdrawalQueue {
	if key == "" {
		key = DefaultQueueKey
	}

	return &WithdrawalQueue{
		client: client,
		key:    key,
	}
}

// Push appends record at the tail.
func (q *WithdrawalQueue) Push(ctx context.Context, record domain.WithdrawalRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode withdrawal record: %w", err)
	}

	return q.client.RPush(ctx, q.key, payload).Err()
}

// Pop removes and returns the head record.
func (q *WithdrawalQueue) Pop(ctx context.Context) (domain.WithdrawalRecord, bool, error) {
	payload, err := q.client.LPop(ctx, q.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.WithdrawalRecord{}, false, nil
	}
	if err != nil {
		return domain.WithdrawalRecord{}, false, err
	}

	var record domain.WithdrawalRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.WithdrawalRecord{}, false, fmt.Errorf("decode withdrawal record: %w", err)
	}

	return record, true, nil
}

// Len returns the number of queued records.
func (q *WithdrawalQueue) Len(ctx context.Context) (int, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, err
	}

	return int(n), nil
}
