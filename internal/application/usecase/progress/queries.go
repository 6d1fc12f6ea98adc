package progress

import (
	"context"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
)

// ListProgressUseCase retrieves progress notes, optionally filtered by
// project.
type ListProgressUseCase struct {
	progressRepo adapter.ProgressRepository
}

// NewListProgressUseCase creates a new ListProgressUseCase instance.
func NewListProgressUseCase(progressRepo adapter.ProgressRepository) *ListProgressUseCase {
	return &ListProgressUseCase{
		progressRepo: progressRepo,
	}
}

// Execute retrieves notes newest first. A zero project ID returns notes
// across all projects.
func (uc *ListProgressUseCase) Execute(ctx context.Context, projectID uuid.UUID) ([]*entity.ProgressNote, error) {
	return uc.progressRepo.FindAll(ctx, projectID)
}

// GetProgressUseCase retrieves a single progress note.
type GetProgressUseCase struct {
	progressRepo adapter.ProgressRepository
}

// NewGetProgressUseCase creates a new GetProgressUseCase instance.
func NewGetProgressUseCase(progressRepo adapter.ProgressRepository) *GetProgressUseCase {
	return &GetProgressUseCase{
		progressRepo: progressRepo,
	}
}

// Execute retrieves the progress note by ID.
func (uc *GetProgressUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.ProgressNote, error) {
	return uc.progressRepo.FindByID(ctx, id)
}
