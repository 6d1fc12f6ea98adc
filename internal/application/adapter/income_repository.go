package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// IncomeRepository defines read and soft-delete access to recorded income
// transactions. Creation happens only inside LedgerRepository's atomic
// distribution commit.
type IncomeRepository interface {
	// FindRecent retrieves the most recent income transactions, newest
	// first, excluding soft-deleted records.
	FindRecent(ctx context.Context, limit int) ([]*entity.IncomeTransaction, error)

	// SoftDelete marks an income transaction as deleted. Balances are not
	// touched; this is a bookkeeping operation for the caller.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
