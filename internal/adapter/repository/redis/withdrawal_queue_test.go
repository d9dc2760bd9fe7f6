package redis

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/domain"
)

func TestWithdrawalQueue_PushPopPreservesOrder(t *testing.T) {
	f := newQueueFixture(t, "")
	queue := f.queue
	ctx := context.Background()

	records := []domain.WithdrawalRecord{
		{WithdrawalID: "w-1", FromAccountID: "acc-1", Address: "addr-1", Amount: decimal.RequireFromString("30.00")},
		{WithdrawalID: "w-2", FromAccountID: "acc-2", Amount: decimal.RequireFromString("0.0000000000001"), Unconfirmed: true},
	}
	for _, rec := range records {
		if err := queue.Push(ctx, rec); err != nil {
			t.Fatalf("push failed: %v", err)
		}
	}

	n, err := queue.Len(ctx)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 queued records, got n=%d err=%v", n, err)
	}

	for _, want := range records {
		got, ok, err := queue.Pop(ctx)
		if err != nil || !ok {
			t.Fatalf("pop failed: ok=%v err=%v", ok, err)
		}
		if got.WithdrawalID != want.WithdrawalID || got.FromAccountID != want.FromAccountID || got.Address != want.Address || got.Unconfirmed != want.Unconfirmed {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
		if !got.Amount.Equal(want.Amount) {
			t.Fatalf("expected amount %s, got %s", want.Amount, got.Amount)
		}
	}
}

func TestWithdrawalQueue_PopEmpty(t *testing.T) {
	f := newQueueFixture(t, "test:queue")

	_, ok, err := f.queue.Pop(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected empty queue")
	}
}

func TestWithdrawalQueue_UsesConfiguredKey(t *testing.T) {
	f := newQueueFixture(t, "custom:key")
	ctx := context.Background()

	if err := f.queue.Push(ctx, domain.WithdrawalRecord{WithdrawalID: "w-1", FromAccountID: "acc", Amount: decimal.NewFromInt(1)}); err != nil {
		t.Fatalf("push failed: %v", err)
	}

	if !f.server.Exists("custom:key") || f.server.Exists(DefaultQueueKey) {
		t.Fatalf("expected record under custom key only, keys=%v", f.server.Keys())
	}
}

func TestWithdrawalQueue_CorruptPayload(t *testing.T) {
	f := newQueueFixture(t, "")
	ctx := context.Background()

	if _, err := f.server.Push(DefaultQueueKey, "not-json"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, _, err := f.queue.Pop(ctx); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestWithdrawalQueue_ServerDown(t *testing.T) {
	f := newQueueFixture(t, "")
	f.server.Close()

	if _, err := f.queue.Len(context.Background()); err == nil {
		t.Fatalf("expected error when redis is down")
	}
}
