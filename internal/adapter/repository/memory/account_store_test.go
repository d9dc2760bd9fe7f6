package memory

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/moneyledger/internal/domain"
)

// sequenceIDs replays ids in order, then falls back to a counter.
type sequenceIDs struct {
	mu    sync.Mutex
	ids   []string
	count int
}

func (g *sequenceIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.ids) > 0 {
		id := g.ids[0]
		g.ids = g.ids[1:]
		return id
	}
	g.count++
	return "generated-" + strconv.Itoa(g.count)
}

func TestAccountStore_CreateAccountRetriesOnIDCollision(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore(&sequenceIDs{ids: []string{"acc-1", "acc-1", "acc-1", "acc-2"}})

	first, err := store.CreateAccount(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)
	second, err := store.CreateAccount(ctx, decimal.NewFromInt(20))
	require.NoError(t, err)

	assert.Equal(t, "acc-1", first.ID)
	assert.Equal(t, "acc-2", second.ID)

	got, err := store.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, got.Balance().Equal(decimal.NewFromInt(10)), "existing account must not be overwritten")
}

func TestAccountStore_CreateAccountRejectsNegativeBalance(t *testing.T) {
	store := NewAccountStore(&sequenceIDs{})

	_, err := store.CreateAccount(context.Background(), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestAccountStore_CreateAccountAllowsZeroBalance(t *testing.T) {
	store := NewAccountStore(&sequenceIDs{})

	account, err := store.CreateAccount(context.Background(), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, account.Balance().IsZero())
}

func TestAccountStore_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore(&sequenceIDs{})

	_, err := store.GetAccount(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	err = store.IncreaseBalance(ctx, "missing", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	err = store.DecreaseBalance(ctx, "missing", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountStore_IncreaseAndDecreaseBalance(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore(&sequenceIDs{})

	account, err := store.CreateAccount(ctx, decimal.RequireFromString("400.00"))
	require.NoError(t, err)

	require.NoError(t, store.IncreaseBalance(ctx, account.ID, decimal.RequireFromString("0.5")))
	require.NoError(t, store.DecreaseBalance(ctx, account.ID, decimal.RequireFromString("100.25")))

	err = store.DecreaseBalance(ctx, account.ID, decimal.RequireFromString("1000"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	assert.Equal(t, "300.25", account.Balance().StringFixed(2))
}

func TestAccountStore_ConcurrentCreateYieldsUniqueIDs(t *testing.T) {
	const workers = 100

	ctx := context.Background()
	store := NewAccountStore(&sequenceIDs{})

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]bool)
	)

	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			account, err := store.CreateAccount(ctx, decimal.Zero)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			mu.Lock()
			ids[account.ID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, workers)
}

func TestAccountStore_ConcurrentDecreaseNeverOverdraws(t *testing.T) {
	const workers = 50

	ctx := context.Background()
	store := NewAccountStore(&sequenceIDs{})
	account, err := store.CreateAccount(ctx, decimal.NewFromInt(25))
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)

	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			err := store.DecreaseBalance(ctx, account.ID, decimal.NewFromInt(1))
			switch {
			case err == nil:
				succeeded.Add(1)
			case !errors.Is(err, domain.ErrInsufficientFunds):
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 25, succeeded.Load())
	assert.True(t, account.Balance().IsZero())
}
