package progress

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

// UpdateProgressInput represents the input for updating a progress note.
// Nil pointer fields are left unchanged.
type UpdateProgressInput struct {
	ID       uuid.UUID
	Title    *string
	Body     *string
	Category *string
}

// UpdateProgressOutput represents the output of updating a progress note.
type UpdateProgressOutput struct {
	Note *entity.ProgressNote
}

// UpdateProgressUseCase handles progress note updates.
type UpdateProgressUseCase struct {
	progressRepo adapter.ProgressRepository
	auditRepo    adapter.AuditLogRepository
}

// NewUpdateProgressUseCase creates a new UpdateProgressUseCase instance.
func NewUpdateProgressUseCase(progressRepo adapter.ProgressRepository, auditRepo adapter.AuditLogRepository) *UpdateProgressUseCase {
	return &UpdateProgressUseCase{
		progressRepo: progressRepo,
		auditRepo:    auditRepo,
	}
}

// Execute performs the progress note update.
func (uc *UpdateProgressUseCase) Execute(ctx context.Context, input UpdateProgressInput) (*UpdateProgressOutput, error) {
	note, err := uc.progressRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.ErrEmptyProgressTitle
		}
		note.Title = title
	}
	if input.Body != nil {
		note.Body = *input.Body
	}
	if input.Category != nil {
		note.Category = strings.TrimSpace(strings.ToLower(*input.Category))
	}
	note.UpdatedAt = time.Now().UTC()

	if err := uc.progressRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update progress note: %w", err)
	}

	audit := entity.NewAuditLogEntry(
		entity.AuditActionEdit,
		"progress",
		note.ID.String(),
		fmt.Sprintf("Updated progress %q", note.Title),
	)
	if err := uc.auditRepo.Append(ctx, audit); err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", err)
	}

	return &UpdateProgressOutput{Note: note}, nil
}
