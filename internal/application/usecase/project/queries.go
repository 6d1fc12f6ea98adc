package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
)

// GetProjectUseCase retrieves a single project.
type GetProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewGetProjectUseCase creates a new GetProjectUseCase instance.
func NewGetProjectUseCase(projectRepo adapter.ProjectRepository) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute retrieves the project by ID.
func (uc *GetProjectUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	return uc.projectRepo.FindByID(ctx, id)
}

// ListProjectsUseCase retrieves all projects.
type ListProjectsUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewListProjectsUseCase creates a new ListProjectsUseCase instance.
func NewListProjectsUseCase(projectRepo adapter.ProjectRepository) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
	}
}

// Execute retrieves all projects, newest first.
func (uc *ListProjectsUseCase) Execute(ctx context.Context) ([]*entity.Project, error) {
	return uc.projectRepo.FindAll(ctx)
}
