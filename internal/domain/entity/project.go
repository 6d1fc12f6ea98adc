package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "not-started"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusDone       ProjectStatus = "done"
)

// ProjectPriority represents the priority level of a project.
type ProjectPriority string

const (
	ProjectPriorityHigh   ProjectPriority = "high"
	ProjectPriorityMedium ProjectPriority = "medium"
	ProjectPriorityLow    ProjectPriority = "low"
)

// Project represents a tracked team project.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	Status      ProjectStatus
	Deadline    *time.Time
	Priority    ProjectPriority
	EffortLevel string
	Owners      []string // roster slugs responsible for the project
	Notes       string
	Blockers    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProject creates a new Project entity.
func NewProject(name, description string, status ProjectStatus, deadline *time.Time, priority ProjectPriority, effortLevel string, owners []string, notes, blockers string) *Project {
	now := time.Now().UTC()

	return &Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Status:      status,
		Deadline:    deadline,
		Priority:    priority,
		EffortLevel: effortLevel,
		Owners:      owners,
		Notes:       notes,
		Blockers:    blockers,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
