package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
)

// DeleteProgressUseCase handles progress note deletion.
type DeleteProgressUseCase struct {
	progressRepo adapter.ProgressRepository
	auditRepo    adapter.AuditLogRepository
}

// NewDeleteProgressUseCase creates a new DeleteProgressUseCase instance.
func NewDeleteProgressUseCase(progressRepo adapter.ProgressRepository, auditRepo adapter.AuditLogRepository) *DeleteProgressUseCase {
	return &DeleteProgressUseCase{
		progressRepo: progressRepo,
		auditRepo:    auditRepo,
	}
}

// Execute deletes the progress note.
func (uc *DeleteProgressUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	note, err := uc.progressRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.progressRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete progress note: %w", err)
	}

	audit := entity.NewAuditLogEntry(
		entity.AuditActionDelete,
		"progress",
		id.String(),
		fmt.Sprintf("Deleted progress %q", note.Title),
	)
	if err := uc.auditRepo.Append(ctx, audit); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}
