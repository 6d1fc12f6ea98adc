package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
)

// DeleteIncomeUseCase soft-deletes an income transaction. Balances are
// never touched; the distribution it produced stays in effect. This is a
// bookkeeping operation for the caller, outside the ledger's invariants.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	auditRepo  adapter.AuditLogRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository, auditRepo adapter.AuditLogRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
		auditRepo:  auditRepo,
	}
}

// Execute soft-deletes the income transaction and records the audit entry.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.incomeRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	audit := entity.NewAuditLogEntry(
		entity.AuditActionDelete,
		"income",
		id.String(),
		fmt.Sprintf("Removed income transaction %s", id),
	)
	if err := uc.auditRepo.Append(ctx, audit); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	slog.Info("Income transaction removed", "transactionID", id)
	return nil
}
