package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/moneyledger/internal/domain"
)

func TestNewWithRegistryRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := NewWithRegistry(registry)

	if m.TransfersCompleted == nil || m.WithdrawalsResolved == nil || m.WatcherQueueSize == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.TransfersCompleted.Inc()
	m.WithdrawalsResolved.WithLabelValues(string(domain.WithdrawalStateFailed)).Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}

	if got := testutil.ToFloat64(m.TransfersCompleted); got != 1 {
		t.Fatalf("expected 1 completed transfer, got %v", got)
	}
}

func TestNewWithRegistryTwiceOnSameRegistryPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewWithRegistry(registry)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected duplicate registration to panic")
		}
	}()
	NewWithRegistry(registry)
}

func TestErrorType(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrAccountNotFound, "account_not_found"},
		{fmt.Errorf("debit acc-1: %w", domain.ErrInsufficientFunds), "insufficient_funds"},
		{domain.ErrSameAccount, "same_account"},
		{domain.ErrInvalidAmount, "invalid_amount"},
		{domain.ErrInvalidAddress, "invalid_address"},
		{domain.ErrGatewayUnavailable, "gateway_unavailable"},
		{errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		if got := ErrorType(tt.err); got != tt.want {
			t.Fatalf("ErrorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
