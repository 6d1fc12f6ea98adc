package entity

import (
	"time"

	"github.com/google/uuid"
)

// IncomeTransaction represents a single incoming payment whose remainder
// (after the period's operating expenses) was distributed into buckets.
// Immutable once recorded, except for soft deletion by the caller.
type IncomeTransaction struct {
	ID          uuid.UUID
	GrossAmount int64
	SourceLabel string
	ProjectID   *uuid.UUID // Set when the income originates from a project
	ProjectName string
	Date        time.Time
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// NewIncomeTransaction creates a new IncomeTransaction entity.
func NewIncomeTransaction(grossAmount int64, sourceLabel string, projectID *uuid.UUID, projectName string, date time.Time) *IncomeTransaction {
	return &IncomeTransaction{
		ID:          uuid.New(),
		GrossAmount: grossAmount,
		SourceLabel: sourceLabel,
		ProjectID:   projectID,
		ProjectName: projectName,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
