package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
)

// DeleteProjectUseCase handles project deletion.
type DeleteProjectUseCase struct {
	projectRepo adapter.ProjectRepository
	auditRepo   adapter.AuditLogRepository
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(projectRepo adapter.ProjectRepository, auditRepo adapter.AuditLogRepository) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		auditRepo:   auditRepo,
	}
}

// Execute deletes the project. Progress notes referencing it keep their
// stored project name for display.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	project, err := uc.projectRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	audit := entity.NewAuditLogEntry(
		entity.AuditActionDelete,
		"project",
		id.String(),
		fmt.Sprintf("Deleted project %q", project.Name),
	)
	if err := uc.auditRepo.Append(ctx, audit); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}
