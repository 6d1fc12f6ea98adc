// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// BalanceModel represents the balances table in the database. The key is
// the primary key: participant slugs, fund keys and category slugs share
// one namespace.
type BalanceModel struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Kind      string    `gorm:"type:varchar(16);not null;index"`
	Label     string    `gorm:"type:varchar(128);not null"`
	Amount    int64     `gorm:"not null;default:0"`
	Target    int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BalanceModel.
func (BalanceModel) TableName() string {
	return "balances"
}

// ToEntity converts a BalanceModel to a domain Balance entity.
func (m *BalanceModel) ToEntity() *entity.Balance {
	return &entity.Balance{
		Key:       m.Key,
		Kind:      entity.BalanceKind(m.Kind),
		Label:     m.Label,
		Amount:    m.Amount,
		Target:    m.Target,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BalanceFromEntity creates a BalanceModel from a domain Balance entity.
func BalanceFromEntity(balance *entity.Balance) *BalanceModel {
	return &BalanceModel{
		Key:       balance.Key,
		Kind:      string(balance.Kind),
		Label:     balance.Label,
		Amount:    balance.Amount,
		Target:    balance.Target,
		CreatedAt: balance.CreatedAt,
		UpdatedAt: balance.UpdatedAt,
	}
}

// HistoryEntryModel represents the balance_history table. Rows are
// append-only; there is no update or delete path.
type HistoryEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BalanceKey string    `gorm:"type:varchar(64);not null;index"`
	Timestamp  time.Time `gorm:"not null;index"`
	Amount     int64     `gorm:"not null"`
	Kind       string    `gorm:"type:varchar(8);not null"`
	Note       string    `gorm:"type:text"`
}

// TableName returns the table name for the HistoryEntryModel.
func (HistoryEntryModel) TableName() string {
	return "balance_history"
}

// ToEntity converts a HistoryEntryModel to a domain HistoryEntry entity.
func (m *HistoryEntryModel) ToEntity() *entity.HistoryEntry {
	return &entity.HistoryEntry{
		ID:         m.ID,
		BalanceKey: m.BalanceKey,
		Timestamp:  m.Timestamp,
		Amount:     m.Amount,
		Kind:       entity.HistoryKind(m.Kind),
		Note:       m.Note,
	}
}

// HistoryEntryFromEntity creates a HistoryEntryModel from a domain HistoryEntry entity.
func HistoryEntryFromEntity(entry *entity.HistoryEntry) *HistoryEntryModel {
	return &HistoryEntryModel{
		ID:         entry.ID,
		BalanceKey: entry.BalanceKey,
		Timestamp:  entry.Timestamp,
		Amount:     entry.Amount,
		Kind:       string(entry.Kind),
		Note:       entry.Note,
	}
}
