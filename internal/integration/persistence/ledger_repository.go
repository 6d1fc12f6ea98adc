// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
	"github.com/team-dashboard/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
// Commits lock the touched balance rows with SELECT ... FOR UPDATE in
// ascending key order, so two commits against overlapping targets
// serialize instead of deadlocking.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// CommitDistribution atomically persists the income transaction, credits
// every allocation bucket, appends one history entry per credit and the
// audit entry.
func (r *ledgerRepository) CommitDistribution(ctx context.Context, commit adapter.DistributionCommit) error {
	buckets := make([]valueBucket, 0, len(commit.Allocation.Buckets))
	for _, b := range commit.Allocation.Buckets {
		buckets = append(buckets, valueBucket{key: b.Key, kind: string(b.Kind), label: b.Label, amount: b.Amount})
	}
	// Deterministic lock order.
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].key < buckets[j].key })

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		incomeModel := model.IncomeTransactionFromEntity(commit.Income)
		if err := tx.Create(incomeModel).Error; err != nil {
			return err
		}

		for _, b := range buckets {
			target := int64(0)
			if b.key == entity.KeyEmergencyFund {
				target = commit.EmergencyFundTarget
			}
			if err := creditBalance(tx, b, target, commit.Note); err != nil {
				return err
			}
		}

		return tx.Create(model.AuditLogEntryFromEntity(commit.Audit)).Error
	})

	return translateCommitError(err)
}

type valueBucket struct {
	key    string
	kind   string
	label  string
	amount int64
}

// lockForUpdate adds SELECT ... FOR UPDATE on dialects that support it.
// SQLite serializes writers on its own and rejects the clause.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// creditBalance locks the balance row, creating it lazily on first
// credit, applies the credit and appends the history entry.
func creditBalance(tx *gorm.DB, b valueBucket, target int64, note string) error {
	now := time.Now().UTC()

	var balanceModel model.BalanceModel
	result := lockForUpdate(tx).
		Where("key = ?", b.key).
		First(&balanceModel)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		balanceModel = model.BalanceModel{
			Key:       b.key,
			Kind:      b.kind,
			Label:     b.label,
			Amount:    b.amount,
			Target:    target,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Create(&balanceModel).Error; err != nil {
			return err
		}
	} else {
		updates := map[string]any{
			"amount":     balanceModel.Amount + b.amount,
			"updated_at": now,
		}
		if target > 0 && balanceModel.Target == 0 {
			updates["target"] = target
		}
		if err := tx.Model(&model.BalanceModel{}).Where("key = ?", b.key).Updates(updates).Error; err != nil {
			return err
		}
	}

	historyEntry := entity.NewHistoryEntry(b.key, b.amount, entity.HistoryKindCredit, note)
	return tx.Create(model.HistoryEntryFromEntity(historyEntry)).Error
}

// CommitWithdrawal atomically re-checks sufficiency, debits the balance,
// appends the debit history entry and the audit entry. The check and the
// debit see the same locked row, so concurrent withdrawals against one
// target cannot both pass the check.
func (r *ledgerRepository) CommitWithdrawal(ctx context.Context, commit adapter.WithdrawalCommit) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var balanceModel model.BalanceModel
		result := lockForUpdate(tx).
			Where("key = ?", commit.TargetKey).
			First(&balanceModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.NewLedgerError(
					domainerror.ErrCodeTargetNotFound,
					"balance record does not exist: "+commit.TargetKey,
					domainerror.ErrTargetNotFound,
				)
			}
			return result.Error
		}

		if balanceModel.Amount < commit.Amount {
			return domainerror.NewInsufficientFundsError(
				"withdrawal exceeds current balance of "+commit.TargetKey,
				balanceModel.Amount,
			)
		}

		now := time.Now().UTC()
		updates := map[string]any{
			"amount":     balanceModel.Amount - commit.Amount,
			"updated_at": now,
		}
		if err := tx.Model(&model.BalanceModel{}).Where("key = ?", commit.TargetKey).Updates(updates).Error; err != nil {
			return err
		}

		historyEntry := entity.NewHistoryEntry(commit.TargetKey, commit.Amount, entity.HistoryKindDebit, commit.Note)
		if err := tx.Create(model.HistoryEntryFromEntity(historyEntry)).Error; err != nil {
			return err
		}

		return tx.Create(model.AuditLogEntryFromEntity(commit.Audit)).Error
	})

	return translateCommitError(err)
}

// FindBalance retrieves a single balance record by its key.
func (r *ledgerRepository) FindBalance(ctx context.Context, key string) (*entity.Balance, error) {
	var balanceModel model.BalanceModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&balanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeTargetNotFound,
				"balance record does not exist: "+key,
				domainerror.ErrTargetNotFound,
			)
		}
		return nil, translateCommitError(result.Error)
	}
	return balanceModel.ToEntity(), nil
}

// FindAllBalances retrieves every balance record ordered by kind then key,
// so participants, funds and categories group together in listings.
func (r *ledgerRepository) FindAllBalances(ctx context.Context) ([]*entity.Balance, error) {
	var balanceModels []model.BalanceModel
	result := r.db.WithContext(ctx).Order("kind ASC, key ASC").Find(&balanceModels)
	if result.Error != nil {
		return nil, translateCommitError(result.Error)
	}

	balances := make([]*entity.Balance, len(balanceModels))
	for i, bm := range balanceModels {
		balances[i] = bm.ToEntity()
	}
	return balances, nil
}

// FindHistory retrieves the most recent history entries for a balance,
// newest first, bounded by limit.
func (r *ledgerRepository) FindHistory(ctx context.Context, balanceKey string, limit int) ([]*entity.HistoryEntry, error) {
	var entryModels []model.HistoryEntryModel
	result := r.db.WithContext(ctx).
		Where("balance_key = ?", balanceKey).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, translateCommitError(result.Error)
	}

	entries := make([]*entity.HistoryEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// translateCommitError maps driver-level failures onto domain errors.
// Domain errors raised inside a transaction pass through unchanged.
func translateCommitError(err error) error {
	if err == nil {
		return nil
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case isContentionError(msg):
		return domainerror.NewLedgerError(
			domainerror.ErrCodeContention,
			"ledger commit conflicted with a concurrent commit",
			domainerror.ErrContention,
		)
	case isUnavailableError(msg):
		return domainerror.NewLedgerError(
			domainerror.ErrCodeStorageUnavailable,
			"storage backend unreachable",
			domainerror.ErrStorageUnavailable,
		)
	}
	return err
}

// isContentionError matches lock and serialization conflicts from
// PostgreSQL (SQLSTATE 40001/40P01, lock timeouts) and SQLite (busy or
// locked database in tests). Duplicate-key violations count too: when
// two commits race on the lazy first-ever creation of a balance row,
// FOR UPDATE on the absent row locks nothing, both insert, and the
// loser's retry will find the row and credit it instead.
func isContentionError(msg string) bool {
	for _, marker := range []string{
		"40001",
		"40p01",
		"deadlock",
		"could not serialize",
		"lock timeout",
		"database is locked",
		"database table is locked",
		"sqlite_busy",
		"23505",
		"duplicate key",
		"unique constraint failed",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// isUnavailableError matches connection-level failures.
func isUnavailableError(msg string) bool {
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"bad connection",
		"broken pipe",
		"database is closed",
		"no such host",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
