package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	"github.com/team-dashboard/backend/internal/integration/persistence/model"
)

// auditLogRepository implements the adapter.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository instance.
func NewAuditLogRepository(db *gorm.DB) adapter.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Append appends a new audit log entry.
func (r *auditLogRepository) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	result := r.db.WithContext(ctx).Create(model.AuditLogEntryFromEntity(entry))
	return translateCommitError(result.Error)
}

// List retrieves the most recent entries, newest first, bounded by limit.
func (r *auditLogRepository) List(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	var entryModels []model.AuditLogEntryModel
	result := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, translateCommitError(result.Error)
	}

	entries := make([]*entity.AuditLogEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}
