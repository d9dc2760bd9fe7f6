package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/domain"
	"github.com/iho/moneyledger/internal/infrastructure/metrics"
)

// LedgerUseCase moves funds between accounts and out of the ledger.
//
// No lock is held across steps. A step that fails after an earlier step has
// already changed a balance is compensated instead.
type LedgerUseCase struct {
	accounts      AccountStore
	gateway       WithdrawalGateway
	tracker       WithdrawalTracker
	withdrawalIDs IDGenerator
	logger        zerolog.Logger
	metrics       *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase. m may be nil.
func NewLedgerUseCase(
	accounts AccountStore,
	gateway WithdrawalGateway,
	tracker WithdrawalTracker,
	withdrawalIDs IDGenerator,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		accounts:      accounts,
		gateway:       gateway,
		tracker:       tracker,
		withdrawalIDs: withdrawalIDs,
		logger:        logger,
		metrics:       m,
	}
}

// TransferInput represents input for moving funds between two accounts.
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

// Transfer debits the sender, then credits the receiver. If the receiver does
// not exist the debit is returned to the sender and ErrAccountNotFound is
// reported.
func (uc *LedgerUseCase) Transfer(ctx context.Context, input TransferInput) error {
	start := time.Now()

	err := uc.transfer(ctx, input)
	if uc.metrics != nil {
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			uc.metrics.TransferErrors.WithLabelValues(metrics.ErrorType(err)).Inc()
		} else {
			uc.metrics.TransfersCompleted.Inc()
		}
	}

	return err
}

func (uc *LedgerUseCase) transfer(ctx context.Context, input TransferInput) error {
	transfer := domain.Transfer{
		FromAccountID: input.FromAccountID,
		ToAccountID:   input.ToAccountID,
		Amount:        input.Amount,
	}
	if err := transfer.Validate(); err != nil {
		return err
	}

	if err := uc.accounts.DecreaseBalance(ctx, input.FromAccountID, input.Amount); err != nil {
		return fmt.Errorf("debit sender %s: %w", input.FromAccountID, err)
	}

	if err := uc.accounts.IncreaseBalance(ctx, input.ToAccountID, input.Amount); err != nil {
		// Accounts are never deleted, so crediting the sender back cannot fail.
		if rbErr := uc.accounts.IncreaseBalance(context.WithoutCancel(ctx), input.FromAccountID, input.Amount); rbErr != nil {
			uc.logger.Error().
				Err(rbErr).
				Str("account_id", input.FromAccountID).
				Str("amount", input.Amount.String()).
				Msg("failed to return debited funds to sender")
		}
		if uc.metrics != nil {
			uc.metrics.TransfersCompensated.Inc()
		}

		return fmt.Errorf("credit receiver %s: %w", input.ToAccountID, err)
	}

	return nil
}

// WithdrawInput represents input for withdrawing funds to an external address.
type WithdrawInput struct {
	FromAccountID string
	Address       domain.Address
	Amount        decimal.Decimal
}

// Withdraw freezes the amount by debiting the account, submits it to the
// gateway under a fresh id and hands it to the tracker. It returns without
// waiting for the gateway to finish.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, input WithdrawInput) (domain.WithdrawalID, error) {
	id, err := uc.withdraw(ctx, input)
	if uc.metrics != nil {
		if err != nil {
			uc.metrics.WithdrawalErrors.WithLabelValues(metrics.ErrorType(err)).Inc()
		} else {
			uc.metrics.WithdrawalsRequested.Inc()
		}
	}

	return id, err
}

func (uc *LedgerUseCase) withdraw(ctx context.Context, input WithdrawInput) (domain.WithdrawalID, error) {
	withdrawal := domain.Withdrawal{
		FromAccountID: input.FromAccountID,
		Address:       input.Address,
		Amount:        input.Amount,
	}
	if err := withdrawal.Validate(); err != nil {
		return "", err
	}

	if err := uc.accounts.DecreaseBalance(ctx, input.FromAccountID, input.Amount); err != nil {
		return "", fmt.Errorf("debit account %s: %w", input.FromAccountID, err)
	}

	record := domain.WithdrawalRecord{
		FromAccountID: input.FromAccountID,
		Address:       input.Address,
		Amount:        input.Amount,
	}

	id, err := uc.submit(ctx, input.Address, input.Amount)
	if errors.Is(err, domain.ErrWithdrawalRejected) {
		uc.refund(ctx, input.FromAccountID, input.Amount)
		return "", fmt.Errorf("request withdrawal: %w", err)
	}
	if err != nil {
		// The gateway may or may not have accepted id. The tracker re-submits
		// it and refunds only if the gateway refuses.
		record.WithdrawalID = id
		record.Unconfirmed = true
		uc.track(ctx, record)

		return "", fmt.Errorf("request withdrawal: %w", err)
	}

	// The gateway holds the funds from here on, so a tracking error must not
	// fail the call.
	record.WithdrawalID = id
	uc.track(ctx, record)

	return id, nil
}

func (uc *LedgerUseCase) track(ctx context.Context, record domain.WithdrawalRecord) {
	if err := uc.tracker.Track(context.WithoutCancel(ctx), record); err != nil {
		uc.logger.Error().
			Err(err).
			Str("withdrawal_id", string(record.WithdrawalID)).
			Str("account_id", record.FromAccountID).
			Str("amount", record.Amount.String()).
			Bool("unconfirmed", record.Unconfirmed).
			Msg("failed to track withdrawal, frozen funds need manual release")
	}
}

// submit requests the withdrawal until the gateway accepts an id. Only id
// collisions are retried; they carry no business meaning. The last id tried
// is returned together with any other error.
func (uc *LedgerUseCase) submit(ctx context.Context, address domain.Address, amount decimal.Decimal) (domain.WithdrawalID, error) {
	for {
		id := domain.WithdrawalID(uc.withdrawalIDs.Generate())

		gwCtx, cancel := context.WithTimeout(ctx, DefaultGatewayTimeout)
		err := uc.gateway.RequestWithdrawal(gwCtx, id, address, amount)
		cancel()

		switch {
		case err == nil:
			return id, nil
		case errors.Is(err, domain.ErrWithdrawalIDInUse):
			if uc.metrics != nil {
				uc.metrics.WithdrawalIDCollisions.Inc()
			}
			uc.logger.Debug().Str("withdrawal_id", string(id)).Msg("withdrawal id collision, retrying")
		case errors.Is(err, domain.ErrGatewayUnavailable), errors.Is(err, domain.ErrWithdrawalRejected):
			return id, err
		default:
			return id, fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, err)
		}
	}
}

func (uc *LedgerUseCase) refund(ctx context.Context, accountID string, amount decimal.Decimal) {
	if err := uc.accounts.IncreaseBalance(context.WithoutCancel(ctx), accountID, amount); err != nil {
		uc.logger.Error().
			Err(err).
			Str("account_id", accountID).
			Str("amount", amount.String()).
			Msg("failed to return frozen funds after rejected withdrawal")
	}
}

// WithdrawalState reports the gateway's view of a withdrawal.
func (uc *LedgerUseCase) WithdrawalState(ctx context.Context, id domain.WithdrawalID) (domain.WithdrawalState, error) {
	gwCtx, cancel := context.WithTimeout(ctx, DefaultGatewayTimeout)
	defer cancel()

	state, err := uc.gateway.GetState(gwCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrWithdrawalNotFound) {
			return "", fmt.Errorf("withdrawal %s: %w", id, domain.ErrWithdrawalNotFound)
		}
		return "", err
	}

	return state, nil
}
