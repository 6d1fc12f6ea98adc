package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
	"github.com/team-dashboard/backend/internal/integration/persistence/model"
)

// progressRepository implements the adapter.ProgressRepository interface.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress note repository instance.
func NewProgressRepository(db *gorm.DB) adapter.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// Create creates a new progress note in the database.
func (r *progressRepository) Create(ctx context.Context, note *entity.ProgressNote) error {
	result := r.db.WithContext(ctx).Create(model.ProgressNoteFromEntity(note))
	return translateCommitError(result.Error)
}

// FindByID retrieves a progress note by its ID.
func (r *progressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProgressNote, error) {
	var noteModel model.ProgressNoteModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&noteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProgressNotFound
		}
		return nil, translateCommitError(result.Error)
	}
	return noteModel.ToEntity(), nil
}

// FindAll retrieves progress notes newest first. A zero project ID
// returns notes across all projects.
func (r *progressRepository) FindAll(ctx context.Context, projectID uuid.UUID) ([]*entity.ProgressNote, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if projectID != uuid.Nil {
		query = query.Where("project_id = ?", projectID)
	}

	var noteModels []model.ProgressNoteModel
	result := query.Find(&noteModels)
	if result.Error != nil {
		return nil, translateCommitError(result.Error)
	}

	notes := make([]*entity.ProgressNote, len(noteModels))
	for i, nm := range noteModels {
		notes[i] = nm.ToEntity()
	}
	return notes, nil
}

// Update updates an existing progress note in the database.
func (r *progressRepository) Update(ctx context.Context, note *entity.ProgressNote) error {
	result := r.db.WithContext(ctx).Save(model.ProgressNoteFromEntity(note))
	return translateCommitError(result.Error)
}

// Delete removes a progress note from the database.
func (r *progressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProgressNoteModel{}, "id = ?", id)
	if result.Error != nil {
		return translateCommitError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProgressNotFound
	}
	return nil
}
