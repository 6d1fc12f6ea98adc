// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/team-dashboard/backend/internal/domain/entity"
	"github.com/team-dashboard/backend/internal/domain/valueobject"
)

// DistributionCommit bundles everything one income distribution writes:
// the income transaction, one credit per allocation bucket, and the audit
// entry. The repository persists it as a single atomic transaction; either
// every record becomes visible or none does.
type DistributionCommit struct {
	Income     *entity.IncomeTransaction
	Allocation valueobject.Allocation
	Note       string
	Audit      *entity.AuditLogEntry

	// EmergencyFundTarget is stamped onto the emergency fund record when
	// it is created lazily by this commit.
	EmergencyFundTarget int64
}

// WithdrawalCommit bundles everything one withdrawal writes. The
// sufficiency check runs inside the same transaction that debits the
// balance, serialized per target.
type WithdrawalCommit struct {
	TargetKey string
	Amount    int64
	Note      string
	Audit     *entity.AuditLogEntry
}

// LedgerRepository defines the interface for balance ledger persistence.
// Mutations are atomic multi-record commits; conflicting commits against
// the same balance surface domain ErrContention for the caller to retry.
type LedgerRepository interface {
	// CommitDistribution atomically persists the income transaction,
	// credits every allocation bucket (creating absent balance records),
	// appends one history entry per credited balance, and appends the
	// audit entry.
	CommitDistribution(ctx context.Context, commit DistributionCommit) error

	// CommitWithdrawal atomically re-checks sufficiency against the
	// current balance, debits it, appends a debit history entry, and
	// appends the audit entry. Returns domain ErrTargetNotFound or an
	// insufficient-funds error carrying the current balance.
	CommitWithdrawal(ctx context.Context, commit WithdrawalCommit) error

	// FindBalance retrieves a single balance record by its key.
	FindBalance(ctx context.Context, key string) (*entity.Balance, error)

	// FindAllBalances retrieves all balance records.
	FindAllBalances(ctx context.Context) ([]*entity.Balance, error)

	// FindHistory retrieves the most recent history entries for a balance,
	// newest first, bounded by limit.
	FindHistory(ctx context.Context, balanceKey string, limit int) ([]*entity.HistoryEntry, error)
}
