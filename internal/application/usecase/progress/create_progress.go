// Package progress implements progress note use cases.
package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

// CreateProgressInput represents the input for creating a progress note.
type CreateProgressInput struct {
	ProjectID uuid.UUID
	Title     string
	Body      string
	Category  string
	CreatedBy string
}

// CreateProgressOutput represents the output of creating a progress note.
type CreateProgressOutput struct {
	Note *entity.ProgressNote
}

// CreateProgressUseCase handles progress note creation.
type CreateProgressUseCase struct {
	progressRepo adapter.ProgressRepository
	projectRepo  adapter.ProjectRepository
	auditRepo    adapter.AuditLogRepository
}

// NewCreateProgressUseCase creates a new CreateProgressUseCase instance.
func NewCreateProgressUseCase(progressRepo adapter.ProgressRepository, projectRepo adapter.ProjectRepository, auditRepo adapter.AuditLogRepository) *CreateProgressUseCase {
	return &CreateProgressUseCase{
		progressRepo: progressRepo,
		projectRepo:  projectRepo,
		auditRepo:    auditRepo,
	}
}

// Execute performs the progress note creation. The referenced project
// must exist; its name is denormalized onto the note.
func (uc *CreateProgressUseCase) Execute(ctx context.Context, input CreateProgressInput) (*CreateProgressOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.ErrEmptyProgressTitle
	}

	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProjectNotFound) {
			return nil, domainerror.ErrProjectNotFoundForProgress
		}
		return nil, err
	}

	note := entity.NewProgressNote(
		project.ID,
		project.Name,
		title,
		input.Body,
		strings.TrimSpace(strings.ToLower(input.Category)),
		strings.TrimSpace(strings.ToLower(input.CreatedBy)),
	)

	if err := uc.progressRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create progress note: %w", err)
	}

	audit := entity.NewAuditLogEntry(
		entity.AuditActionAdd,
		"progress",
		note.ID.String(),
		fmt.Sprintf("Added progress %q to project %q", note.Title, project.Name),
	)
	if err := uc.auditRepo.Append(ctx, audit); err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", err)
	}

	return &CreateProgressOutput{Note: note}, nil
}
