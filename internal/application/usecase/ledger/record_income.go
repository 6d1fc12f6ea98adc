package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
	"github.com/team-dashboard/backend/internal/domain/valueobject"
)

const (
	// maxCommitAttempts bounds the retry loop for contended commits.
	maxCommitAttempts = 3
	// commitBackoffBase is the base delay between commit retries.
	commitBackoffBase = 25 * time.Millisecond
)

// RecordIncomeInput represents the input for recording an income payment
// with automatic distribution.
type RecordIncomeInput struct {
	GrossAmount int64
	SourceLabel string
	ProjectID   *uuid.UUID
	ProjectName string
	Note        string
	Date        time.Time
}

// RecordIncomeOutput represents the output of a successful distribution.
type RecordIncomeOutput struct {
	TransactionID uuid.UUID
	Allocation    valueobject.Allocation
}

// RecordIncomeUseCase records one incoming payment: it sums the active
// period's expenses, distributes the remainder per the configured policy,
// and commits every credited balance, its history entry and the audit
// entry in a single atomic transaction.
type RecordIncomeUseCase struct {
	expenseRepo         adapter.ExpenseRepository
	ledgerRepo          adapter.LedgerRepository
	policy              valueobject.DistributionPolicy
	roster              []string
	emergencyFundTarget int64
}

// NewRecordIncomeUseCase creates a new RecordIncomeUseCase instance.
func NewRecordIncomeUseCase(
	expenseRepo adapter.ExpenseRepository,
	ledgerRepo adapter.LedgerRepository,
	policy valueobject.DistributionPolicy,
	roster []string,
	emergencyFundTarget int64,
) *RecordIncomeUseCase {
	return &RecordIncomeUseCase{
		expenseRepo:         expenseRepo,
		ledgerRepo:          ledgerRepo,
		policy:              policy,
		roster:              roster,
		emergencyFundTarget: emergencyFundTarget,
	}
}

// Execute performs the income recording and distribution.
func (uc *RecordIncomeUseCase) Execute(ctx context.Context, input RecordIncomeInput) (*RecordIncomeOutput, error) {
	if input.GrossAmount <= 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"income amount must be a positive integer",
			domainerror.ErrInvalidAmount,
		)
	}

	start, end := periodBounds(input.Date)
	periodExpenseTotal, err := uc.expenseRepo.SumInPeriod(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum period expenses: %w", err)
	}

	// Calculator errors propagate unchanged; nothing has been written yet.
	allocation, err := Distribute(input.GrossAmount, periodExpenseTotal, uc.policy, uc.roster)
	if err != nil {
		return nil, err
	}

	income := entity.NewIncomeTransaction(
		input.GrossAmount,
		input.SourceLabel,
		input.ProjectID,
		input.ProjectName,
		input.Date,
	)

	audit := entity.NewAuditLogEntry(
		entity.AuditActionAdd,
		"income",
		income.ID.String(),
		distributionSummary(income, allocation),
	)

	commit := adapter.DistributionCommit{
		Income:              income,
		Allocation:          allocation,
		Note:                input.Note,
		Audit:               audit,
		EmergencyFundTarget: uc.emergencyFundTarget,
	}

	if err := uc.commitWithRetry(ctx, commit); err != nil {
		return nil, err
	}

	slog.Info("Income distributed",
		"transactionID", income.ID,
		"gross", input.GrossAmount,
		"remainder", allocation.Remainder,
		"policy", allocation.PolicyName,
	)

	return &RecordIncomeOutput{
		TransactionID: income.ID,
		Allocation:    allocation,
	}, nil
}

// commitWithRetry retries contended commits a bounded number of times
// with jittered backoff before surfacing a contention error. Storage
// failures are surfaced immediately; the caller owns that retry policy.
func (uc *RecordIncomeUseCase) commitWithRetry(ctx context.Context, commit adapter.DistributionCommit) error {
	var err error
	for attempt := 1; attempt <= maxCommitAttempts; attempt++ {
		err = uc.ledgerRepo.CommitDistribution(ctx, commit)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domainerror.ErrContention) {
			return err
		}

		if attempt < maxCommitAttempts {
			backoff := time.Duration(attempt)*commitBackoffBase + time.Duration(rand.Int63n(int64(commitBackoffBase)))
			slog.Warn("Distribution commit contended, retrying",
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
		fmt.Sprintf("distribution commit failed after %d attempts", maxCommitAttempts),
		domainerror.ErrContention,
	)
}

// distributionSummary builds the audit log line enumerating the totals
// credited to each bucket.
func distributionSummary(income *entity.IncomeTransaction, allocation valueobject.Allocation) string {
	parts := make([]string, 0, len(allocation.Buckets))
	for _, bucket := range allocation.Buckets {
		parts = append(parts, fmt.Sprintf("%s %s", bucket.Label, valueobject.FormatIDR(bucket.Amount)))
	}

	return fmt.Sprintf("Income %s from %s distributed: %s",
		valueobject.FormatIDR(income.GrossAmount),
		income.SourceLabel,
		strings.Join(parts, ", "),
	)
}
