package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// ProgressNoteModel represents the progress_notes table in the database.
type ProgressNoteModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProjectName string    `gorm:"type:varchar(255)"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Body        string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(64)"`
	ImageURL    string    `gorm:"type:varchar(512)"`
	CreatedBy   string    `gorm:"type:varchar(64);not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProgressNoteModel.
func (ProgressNoteModel) TableName() string {
	return "progress_notes"
}

// ToEntity converts a ProgressNoteModel to a domain ProgressNote entity.
func (m *ProgressNoteModel) ToEntity() *entity.ProgressNote {
	return &entity.ProgressNote{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		ProjectName: m.ProjectName,
		Title:       m.Title,
		Body:        m.Body,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProgressNoteFromEntity creates a ProgressNoteModel from a domain entity.
func ProgressNoteFromEntity(note *entity.ProgressNote) *ProgressNoteModel {
	return &ProgressNoteModel{
		ID:          note.ID,
		ProjectID:   note.ProjectID,
		ProjectName: note.ProjectName,
		Title:       note.Title,
		Body:        note.Body,
		Category:    note.Category,
		ImageURL:    note.ImageURL,
		CreatedBy:   note.CreatedBy,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
}
