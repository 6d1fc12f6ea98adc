package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies the kind of mutating operation recorded in the
// audit log.
type AuditAction string

const (
	AuditActionAdd      AuditAction = "add"
	AuditActionEdit     AuditAction = "edit"
	AuditActionDelete   AuditAction = "delete"
	AuditActionWithdraw AuditAction = "withdraw"
)

// AuditLogEntry is an immutable, human-readable record of one mutating
// operation, independent of the per-balance history trail. Entries are
// append-only and listed newest first.
type AuditLogEntry struct {
	ID         uuid.UUID
	Timestamp  time.Time
	Action     AuditAction
	TargetKind string
	TargetID   string
	Summary    string
}

// NewAuditLogEntry creates a new AuditLogEntry entity.
func NewAuditLogEntry(action AuditAction, targetKind, targetID, summary string) *AuditLogEntry {
	return &AuditLogEntry{
		ID:         uuid.New(),
		Timestamp:  time.Now().UTC(),
		Action:     action,
		TargetKind: targetKind,
		TargetID:   targetID,
		Summary:    summary,
	}
}
