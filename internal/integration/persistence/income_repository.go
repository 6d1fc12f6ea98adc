package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
	"github.com/team-dashboard/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
// Income rows are only created inside the ledger's distribution commit.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// FindRecent retrieves the most recent income transactions, newest first.
// Soft-deleted rows are excluded by gorm's default scope.
func (r *incomeRepository) FindRecent(ctx context.Context, limit int) ([]*entity.IncomeTransaction, error) {
	var incomeModels []model.IncomeTransactionModel
	result := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&incomeModels)
	if result.Error != nil {
		return nil, translateCommitError(result.Error)
	}

	incomes := make([]*entity.IncomeTransaction, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// SoftDelete marks an income transaction as deleted.
func (r *incomeRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IncomeTransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return translateCommitError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeTargetNotFound,
			"income transaction does not exist: "+id.String(),
			domainerror.ErrTargetNotFound,
		)
	}
	return nil
}
