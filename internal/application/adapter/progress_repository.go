package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// ProgressRepository defines the interface for progress note persistence.
type ProgressRepository interface {
	// Create creates a new progress note.
	Create(ctx context.Context, note *entity.ProgressNote) error

	// FindByID retrieves a progress note by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProgressNote, error)

	// FindAll retrieves all progress notes, newest first. A zero project
	// ID returns notes across all projects.
	FindAll(ctx context.Context, projectID uuid.UUID) ([]*entity.ProgressNote, error)

	// Update updates an existing progress note.
	Update(ctx context.Context, note *entity.ProgressNote) error

	// Delete removes a progress note.
	Delete(ctx context.Context, id uuid.UUID) error
}
