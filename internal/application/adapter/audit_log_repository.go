package adapter

import (
	"context"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// AuditLogRepository defines the interface for the append-only audit log.
// Existing entries are never mutated or reordered.
type AuditLogRepository interface {
	// Append appends a new audit log entry.
	Append(ctx context.Context, entry *entity.AuditLogEntry) error

	// List retrieves the most recent entries ordered by timestamp
	// descending, bounded by limit.
	List(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error)
}
