package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// ProjectModel represents the projects table in the database. Owners are
// stored as a comma-joined list of roster slugs; the roster is small and
// fixed, so no join table is needed.
type ProjectModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
	Deadline    *time.Time `gorm:"type:date"`
	Priority    string     `gorm:"type:varchar(8);not null"`
	EffortLevel string     `gorm:"type:varchar(32)"`
	Owners      string     `gorm:"type:varchar(255)"`
	Notes       string     `gorm:"type:text"`
	Blockers    string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts a ProjectModel to a domain Project entity.
func (m *ProjectModel) ToEntity() *entity.Project {
	var owners []string
	if m.Owners != "" {
		owners = strings.Split(m.Owners, ",")
	}

	return &entity.Project{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Status:      entity.ProjectStatus(m.Status),
		Deadline:    m.Deadline,
		Priority:    entity.ProjectPriority(m.Priority),
		EffortLevel: m.EffortLevel,
		Owners:      owners,
		Notes:       m.Notes,
		Blockers:    m.Blockers,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProjectFromEntity creates a ProjectModel from a domain Project entity.
func ProjectFromEntity(project *entity.Project) *ProjectModel {
	return &ProjectModel{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		Deadline:    project.Deadline,
		Priority:    string(project.Priority),
		EffortLevel: project.EffortLevel,
		Owners:      strings.Join(project.Owners, ","),
		Notes:       project.Notes,
		Blockers:    project.Blockers,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
