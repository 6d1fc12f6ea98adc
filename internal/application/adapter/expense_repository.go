package adapter

import (
	"context"
	"time"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense record persistence.
type ExpenseRepository interface {
	// Create appends a new expense record together with its audit entry
	// in one transaction.
	Create(ctx context.Context, expense *entity.ExpenseRecord, audit *entity.AuditLogEntry) error

	// SumInPeriod returns the total expense amount for records whose date
	// falls within the half-open window [start, end).
	SumInPeriod(ctx context.Context, start, end time.Time) (int64, error)

	// FindRecent retrieves the most recent expense records, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.ExpenseRecord, error)
}
