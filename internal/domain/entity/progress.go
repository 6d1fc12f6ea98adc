package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProgressNote represents one progress update attached to a project.
type ProgressNote struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	ProjectName string
	Title       string
	Body        string
	Category    string
	ImageURL    string
	CreatedBy   string // roster slug of the author
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProgressNote creates a new ProgressNote entity.
func NewProgressNote(projectID uuid.UUID, projectName, title, body, category, createdBy string) *ProgressNote {
	now := time.Now().UTC()

	return &ProgressNote{
		ID:          uuid.New(),
		ProjectID:   projectID,
		ProjectName: projectName,
		Title:       title,
		Body:        body,
		Category:    category,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
