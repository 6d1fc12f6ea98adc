// Package project implements project tracking use cases.
package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

// CreateProjectInput represents the input for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      string
	Deadline    *time.Time
	Priority    string
	EffortLevel string
	Owners      []string
	Notes       string
	Blockers    string
}

// CreateProjectOutput represents the output of creating a project.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation.
type CreateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
	auditRepo   adapter.AuditLogRepository
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(projectRepo adapter.ProjectRepository, auditRepo adapter.AuditLogRepository) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		auditRepo:   auditRepo,
	}
}

// Execute performs the project creation.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrEmptyProjectName
	}

	status, err := parseStatus(input.Status)
	if err != nil {
		return nil, err
	}
	priority, err := parsePriority(input.Priority)
	if err != nil {
		return nil, err
	}

	project := entity.NewProject(
		name,
		input.Description,
		status,
		input.Deadline,
		priority,
		input.EffortLevel,
		normalizeOwners(input.Owners),
		input.Notes,
		input.Blockers,
	)

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	audit := entity.NewAuditLogEntry(
		entity.AuditActionAdd,
		"project",
		project.ID.String(),
		fmt.Sprintf("Created project %q", project.Name),
	)
	if err := uc.auditRepo.Append(ctx, audit); err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", err)
	}

	return &CreateProjectOutput{Project: project}, nil
}

func parseStatus(raw string) (entity.ProjectStatus, error) {
	status := entity.ProjectStatus(strings.TrimSpace(strings.ToLower(raw)))
	switch status {
	case entity.ProjectStatusNotStarted, entity.ProjectStatusInProgress, entity.ProjectStatusDone:
		return status, nil
	case "":
		return entity.ProjectStatusNotStarted, nil
	}
	return "", domainerror.ErrInvalidProjectStatus
}

func parsePriority(raw string) (entity.ProjectPriority, error) {
	priority := entity.ProjectPriority(strings.TrimSpace(strings.ToLower(raw)))
	switch priority {
	case entity.ProjectPriorityHigh, entity.ProjectPriorityMedium, entity.ProjectPriorityLow:
		return priority, nil
	case "":
		return entity.ProjectPriorityMedium, nil
	}
	return "", domainerror.ErrInvalidProjectPriority
}

// normalizeOwners lowercases owner slugs and drops blanks. Owners are
// roster slugs matching the participant balance keys.
func normalizeOwners(owners []string) []string {
	out := make([]string, 0, len(owners))
	for _, o := range owners {
		if slug := strings.TrimSpace(strings.ToLower(o)); slug != "" {
			out = append(out, slug)
		}
	}
	return out
}
