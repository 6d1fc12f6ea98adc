package dto

import (
	"time"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// CreateProgressRequest represents the request body for progress creation.
type CreateProgressRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Title     string `json:"title" binding:"required,min=1,max=255"`
	Body      string `json:"body,omitempty" binding:"omitempty,max=5000"`
	Category  string `json:"category,omitempty" binding:"omitempty,max=64"`
}

// UpdateProgressRequest represents the request body for progress update.
type UpdateProgressRequest struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Body     *string `json:"body,omitempty" binding:"omitempty,max=5000"`
	Category *string `json:"category,omitempty" binding:"omitempty,max=64"`
}

// ProgressResponse represents a progress note in API responses.
type ProgressResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ProgressListResponse represents the response for listing progress notes.
type ProgressListResponse struct {
	Progress []ProgressResponse `json:"progress"`
}

// AttachImageResponse represents the response for an image upload.
type AttachImageResponse struct {
	ImageURL string `json:"image_url"`
}

// ToProgressResponse converts a ProgressNote entity to its response DTO.
func ToProgressResponse(note *entity.ProgressNote) ProgressResponse {
	return ProgressResponse{
		ID:          note.ID.String(),
		ProjectID:   note.ProjectID.String(),
		ProjectName: note.ProjectName,
		Title:       note.Title,
		Body:        note.Body,
		Category:    note.Category,
		ImageURL:    note.ImageURL,
		CreatedBy:   note.CreatedBy,
		CreatedAt:   note.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   note.UpdatedAt.Format(time.RFC3339),
	}
}
