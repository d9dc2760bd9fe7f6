package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/moneyledger/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Account metrics
	AccountsOpened prometheus.Counter

	// Transfer metrics
	TransfersCompleted   prometheus.Counter
	TransfersCompensated prometheus.Counter
	TransferErrors       *prometheus.CounterVec
	TransferDuration     prometheus.Histogram

	// Withdrawal metrics
	WithdrawalsRequested   prometheus.Counter
	WithdrawalIDCollisions prometheus.Counter
	WithdrawalErrors       *prometheus.CounterVec
	WithdrawalsResolved    *prometheus.CounterVec

	// Watcher metrics
	RefundsApplied   prometheus.Counter
	RefundsLost      prometheus.Counter
	WatcherQueueSize prometheus.Gauge
	WatcherTick      prometheus.Histogram
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates and registers all metrics on reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AccountsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "moneyledger_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),

		TransfersCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "moneyledger_transfers_completed_total",
			Help: "Total number of transfers applied to both accounts",
		}),
		TransfersCompensated: factory.NewCounter(prometheus.CounterOpts{
			Name: "moneyledger_transfers_compensated_total",
			Help: "Total number of transfers whose debit was rolled back",
		}),
		TransferErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneyledger_transfer_errors_total",
				Help: "Total number of transfer errors by type",
			},
			[]string{"error_type"},
		),
		TransferDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "moneyledger_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),

		WithdrawalsRequested: factory.NewCounter(prometheus.CounterOpts{
			Name: "moneyledger_withdrawals_requested_total",
			Help: "Total number of withdrawals accepted by the gateway",
		}),
		WithdrawalIDCollisions: factory.NewCounter(prometheus.CounterOpts{
			Name: "moneyledger_withdrawal_id_collisions_total",
			Help: "Total number of withdrawal ids rejected as already in use",
		}),
		WithdrawalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneyledger_withdrawal_errors_total",
				Help: "Total number of withdrawal errors by type",
			},
			[]string{"error_type"},
		),
		WithdrawalsResolved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneyledger_withdrawals_resolved_total",
				Help: "Total number of withdrawals observed in a terminal state",
			},
			[]string{"state"},
		),

		RefundsApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "moneyledger_refunds_applied_total",
			Help: "Total number of frozen amounts returned to their account",
		}),
		RefundsLost: factory.NewCounter(prometheus.CounterOpts{
			Name: "moneyledger_refunds_lost_total",
			Help: "Total number of refunds that found no account to return to",
		}),
		WatcherQueueSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "moneyledger_watcher_queue_size",
			Help: "Withdrawals waiting for a terminal state",
		}),
		WatcherTick: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "moneyledger_watcher_tick_duration_seconds",
			Help:    "Duration of a single reconciliation pass",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ErrorType returns a low-cardinality label for err.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, domain.ErrGatewayUnavailable):
		return "gateway_unavailable"
	case errors.Is(err, domain.ErrWithdrawalRejected):
		return "withdrawal_rejected"
	default:
		return "internal"
	}
}
