package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

// UpdateProjectInput represents the input for updating a project. Nil
// pointer fields are left unchanged.
type UpdateProjectInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Status      *string
	Deadline    *time.Time
	Priority    *string
	EffortLevel *string
	Owners      []string
	Notes       *string
	Blockers    *string
}

// UpdateProjectOutput represents the output of updating a project.
type UpdateProjectOutput struct {
	Project *entity.Project
}

// UpdateProjectUseCase handles project updates.
type UpdateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
	auditRepo   adapter.AuditLogRepository
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(projectRepo adapter.ProjectRepository, auditRepo adapter.AuditLogRepository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		auditRepo:   auditRepo,
	}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.ErrEmptyProjectName
		}
		project.Name = name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		status, err := parseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		project.Status = status
	}
	if input.Deadline != nil {
		project.Deadline = input.Deadline
	}
	if input.Priority != nil {
		priority, err := parsePriority(*input.Priority)
		if err != nil {
			return nil, err
		}
		project.Priority = priority
	}
	if input.EffortLevel != nil {
		project.EffortLevel = *input.EffortLevel
	}
	if input.Owners != nil {
		project.Owners = normalizeOwners(input.Owners)
	}
	if input.Notes != nil {
		project.Notes = *input.Notes
	}
	if input.Blockers != nil {
		project.Blockers = *input.Blockers
	}
	project.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	audit := entity.NewAuditLogEntry(
		entity.AuditActionEdit,
		"project",
		project.ID.String(),
		fmt.Sprintf("Updated project %q", project.Name),
	)
	if err := uc.auditRepo.Append(ctx, audit); err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", err)
	}

	return &UpdateProjectOutput{Project: project}, nil
}
