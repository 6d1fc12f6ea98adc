package dto

import (
	"time"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Description string   `json:"description,omitempty" binding:"omitempty,max=2000"`
	Status      string   `json:"status,omitempty" binding:"omitempty,oneof=not-started in-progress done"`
	Deadline    *string  `json:"deadline,omitempty"`
	Priority    string   `json:"priority,omitempty" binding:"omitempty,oneof=high medium low"`
	EffortLevel string   `json:"effort_level,omitempty" binding:"omitempty,max=32"`
	Owners      []string `json:"owners,omitempty"`
	Notes       string   `json:"notes,omitempty" binding:"omitempty,max=2000"`
	Blockers    string   `json:"blockers,omitempty" binding:"omitempty,max=2000"`
}

// UpdateProjectRequest represents the request body for project update.
type UpdateProjectRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=2000"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=not-started in-progress done"`
	Deadline    *string  `json:"deadline,omitempty"`
	Priority    *string  `json:"priority,omitempty" binding:"omitempty,oneof=high medium low"`
	EffortLevel *string  `json:"effort_level,omitempty" binding:"omitempty,max=32"`
	Owners      []string `json:"owners,omitempty"`
	Notes       *string  `json:"notes,omitempty" binding:"omitempty,max=2000"`
	Blockers    *string  `json:"blockers,omitempty" binding:"omitempty,max=2000"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Deadline    *string  `json:"deadline,omitempty"`
	Priority    string   `json:"priority"`
	EffortLevel string   `json:"effort_level,omitempty"`
	Owners      []string `json:"owners"`
	Notes       string   `json:"notes,omitempty"`
	Blockers    string   `json:"blockers,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ProjectListResponse represents the response for listing projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse converts a Project entity to its response DTO.
func ToProjectResponse(project *entity.Project) ProjectResponse {
	var deadline *string
	if project.Deadline != nil {
		d := project.Deadline.Format("2006-01-02")
		deadline = &d
	}

	owners := project.Owners
	if owners == nil {
		owners = []string{}
	}

	return ProjectResponse{
		ID:          project.ID.String(),
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		Deadline:    deadline,
		Priority:    string(project.Priority),
		EffortLevel: project.EffortLevel,
		Owners:      owners,
		Notes:       project.Notes,
		Blockers:    project.Blockers,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339),
	}
}
