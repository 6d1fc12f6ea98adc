package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	"github.com/team-dashboard/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create appends the expense record and its audit entry in one transaction.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.ExpenseRecord, audit *entity.AuditLogEntry) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ExpenseRecordFromEntity(expense)).Error; err != nil {
			return err
		}
		return tx.Create(model.AuditLogEntryFromEntity(audit)).Error
	})
	return translateCommitError(err)
}

// SumInPeriod returns the total expense amount for records whose date
// falls within the half-open window [start, end).
func (r *expenseRepository) SumInPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	var sumResult struct {
		Total int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseRecordModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("date >= ? AND date < ?", start, end).
		Scan(&sumResult)
	if result.Error != nil {
		return 0, translateCommitError(result.Error)
	}
	return sumResult.Total, nil
}

// FindRecent retrieves the most recent expense records, newest first.
func (r *expenseRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ExpenseRecord, error) {
	var expenseModels []model.ExpenseRecordModel
	result := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, translateCommitError(result.Error)
	}

	expenses := make([]*entity.ExpenseRecord, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}
