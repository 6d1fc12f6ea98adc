package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// AuditLogEntryModel represents the audit_log table. Rows are append-only.
type AuditLogEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Timestamp  time.Time `gorm:"not null;index"`
	Action     string    `gorm:"type:varchar(16);not null"`
	TargetKind string    `gorm:"type:varchar(32);not null"`
	TargetID   string    `gorm:"type:varchar(64)"`
	Summary    string    `gorm:"type:text;not null"`
}

// TableName returns the table name for the AuditLogEntryModel.
func (AuditLogEntryModel) TableName() string {
	return "audit_log"
}

// ToEntity converts an AuditLogEntryModel to a domain AuditLogEntry entity.
func (m *AuditLogEntryModel) ToEntity() *entity.AuditLogEntry {
	return &entity.AuditLogEntry{
		ID:         m.ID,
		Timestamp:  m.Timestamp,
		Action:     entity.AuditAction(m.Action),
		TargetKind: m.TargetKind,
		TargetID:   m.TargetID,
		Summary:    m.Summary,
	}
}

// AuditLogEntryFromEntity creates an AuditLogEntryModel from a domain entity.
func AuditLogEntryFromEntity(entry *entity.AuditLogEntry) *AuditLogEntryModel {
	return &AuditLogEntryModel{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Action:     string(entry.Action),
		TargetKind: entry.TargetKind,
		TargetID:   entry.TargetID,
		Summary:    entry.Summary,
	}
}
