package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
)

// BalanceOutput represents one balance record in query results.
type BalanceOutput struct {
	Balance *entity.Balance
	History []*entity.HistoryEntry
}

// GetBalanceUseCase retrieves one balance with its recent history.
type GetBalanceUseCase struct {
	ledgerRepo   adapter.LedgerRepository
	historyLimit int
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(ledgerRepo adapter.LedgerRepository, historyLimit int) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		ledgerRepo:   ledgerRepo,
		historyLimit: historyLimit,
	}
}

// Execute retrieves the balance and its most recent history entries.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, targetKey string) (*BalanceOutput, error) {
	key := strings.TrimSpace(strings.ToLower(targetKey))

	balance, err := uc.ledgerRepo.FindBalance(ctx, key)
	if err != nil {
		return nil, err
	}

	history, err := uc.ledgerRepo.FindHistory(ctx, key, uc.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", key, err)
	}

	return &BalanceOutput{Balance: balance, History: history}, nil
}

// ListBalancesUseCase retrieves every balance record.
type ListBalancesUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListBalancesUseCase creates a new ListBalancesUseCase instance.
func NewListBalancesUseCase(ledgerRepo adapter.LedgerRepository) *ListBalancesUseCase {
	return &ListBalancesUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute retrieves all balances.
func (uc *ListBalancesUseCase) Execute(ctx context.Context) ([]*entity.Balance, error) {
	return uc.ledgerRepo.FindAllBalances(ctx)
}

// ListHistoryUseCase retrieves the recent history trail of one balance.
type ListHistoryUseCase struct {
	ledgerRepo   adapter.LedgerRepository
	defaultLimit int
}

// NewListHistoryUseCase creates a new ListHistoryUseCase instance.
func NewListHistoryUseCase(ledgerRepo adapter.LedgerRepository, defaultLimit int) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		ledgerRepo:   ledgerRepo,
		defaultLimit: defaultLimit,
	}
}

// Execute retrieves history entries newest first, bounded by limit.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, targetKey string, limit int) ([]*entity.HistoryEntry, error) {
	key := strings.TrimSpace(strings.ToLower(targetKey))
	if limit <= 0 {
		limit = uc.defaultLimit
	}

	// Existence check so an unknown target is distinguishable from an
	// empty history.
	if _, err := uc.ledgerRepo.FindBalance(ctx, key); err != nil {
		return nil, err
	}

	return uc.ledgerRepo.FindHistory(ctx, key, limit)
}

// ListAuditLogUseCase retrieves recent audit log entries, newest first.
type ListAuditLogUseCase struct {
	auditRepo    adapter.AuditLogRepository
	defaultLimit int
}

// NewListAuditLogUseCase creates a new ListAuditLogUseCase instance.
func NewListAuditLogUseCase(auditRepo adapter.AuditLogRepository, defaultLimit int) *ListAuditLogUseCase {
	return &ListAuditLogUseCase{
		auditRepo:    auditRepo,
		defaultLimit: defaultLimit,
	}
}

// Execute retrieves the audit log bounded by limit.
func (uc *ListAuditLogUseCase) Execute(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	return uc.auditRepo.List(ctx, limit)
}

// ListExpensesUseCase retrieves recent expense records.
type ListExpensesUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	defaultLimit int
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, defaultLimit int) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo:  expenseRepo,
		defaultLimit: defaultLimit,
	}
}

// Execute retrieves recent expenses, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, limit int) ([]*entity.ExpenseRecord, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	return uc.expenseRepo.FindRecent(ctx, limit)
}

// ListIncomeUseCase retrieves recent income transactions.
type ListIncomeUseCase struct {
	incomeRepo   adapter.IncomeRepository
	defaultLimit int
}

// NewListIncomeUseCase creates a new ListIncomeUseCase instance.
func NewListIncomeUseCase(incomeRepo adapter.IncomeRepository, defaultLimit int) *ListIncomeUseCase {
	return &ListIncomeUseCase{
		incomeRepo:   incomeRepo,
		defaultLimit: defaultLimit,
	}
}

// Execute retrieves recent income transactions, newest first.
func (uc *ListIncomeUseCase) Execute(ctx context.Context, limit int) ([]*entity.IncomeTransaction, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	return uc.incomeRepo.FindRecent(ctx, limit)
}
