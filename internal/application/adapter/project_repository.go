package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	// Create creates a new project.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindAll retrieves all projects ordered by creation time descending.
	FindAll(ctx context.Context) ([]*entity.Project, error)

	// Update updates an existing project.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project.
	Delete(ctx context.Context, id uuid.UUID) error
}
