package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
	"github.com/team-dashboard/backend/internal/domain/valueobject"
)

// WithdrawInput represents the input for withdrawing from a balance.
type WithdrawInput struct {
	TargetKey string
	Amount    int64
	Note      string
}

// WithdrawUseCase debits a participant, fund or category balance. The
// sufficiency check and the debit run inside one transaction serialized
// per target, so concurrent withdrawals can never both pass the check
// against a stale balance.
type WithdrawUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewWithdrawUseCase creates a new WithdrawUseCase instance.
func NewWithdrawUseCase(ledgerRepo adapter.LedgerRepository) *WithdrawUseCase {
	return &WithdrawUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the withdrawal.
func (uc *WithdrawUseCase) Execute(ctx context.Context, input WithdrawInput) error {
	// Validation happens before any read or transaction.
	if input.Amount <= 0 {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"withdrawal amount must be a positive integer",
			domainerror.ErrInvalidAmount,
		)
	}

	targetKey := strings.TrimSpace(strings.ToLower(input.TargetKey))
	if targetKey == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeTargetNotFound,
			"withdrawal target must not be empty",
			domainerror.ErrTargetNotFound,
		)
	}

	audit := entity.NewAuditLogEntry(
		entity.AuditActionWithdraw,
		"balance",
		targetKey,
		fmt.Sprintf("Withdrew %s from %s", valueobject.FormatIDR(input.Amount), targetKey),
	)

	commit := adapter.WithdrawalCommit{
		TargetKey: targetKey,
		Amount:    input.Amount,
		Note:      input.Note,
		Audit:     audit,
	}

	var err error
	for attempt := 1; attempt <= maxCommitAttempts; attempt++ {
		err = uc.ledgerRepo.CommitWithdrawal(ctx, commit)
		if err == nil {
			slog.Info("Withdrawal committed",
				"target", targetKey,
				"amount", input.Amount,
			)
			return nil
		}
		if !errors.Is(err, domainerror.ErrContention) {
			return err
		}

		if attempt < maxCommitAttempts {
			backoff := time.Duration(attempt)*commitBackoffBase + time.Duration(rand.Int63n(int64(commitBackoffBase)))
			slog.Warn("Withdrawal commit contended, retrying",
				"target", targetKey,
				"attempt", attempt,
				"backoff", backoff,
			)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return domainerror.NewLedgerError(
		domainerror.ErrCodeContention,
		fmt.Sprintf("withdrawal commit failed after %d attempts", maxCommitAttempts),
		domainerror.ErrContention,
	)
}
