package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// ExpenseRecordModel represents the expense_records table.
type ExpenseRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Amount    int64     `gorm:"not null"`
	Label     string    `gorm:"type:varchar(255);not null"`
	Note      string    `gorm:"type:text"`
	Date      time.Time `gorm:"type:date;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExpenseRecordModel.
func (ExpenseRecordModel) TableName() string {
	return "expense_records"
}

// ToEntity converts an ExpenseRecordModel to a domain ExpenseRecord entity.
func (m *ExpenseRecordModel) ToEntity() *entity.ExpenseRecord {
	return &entity.ExpenseRecord{
		ID:        m.ID,
		Amount:    m.Amount,
		Label:     m.Label,
		Note:      m.Note,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

// ExpenseRecordFromEntity creates an ExpenseRecordModel from a domain entity.
func ExpenseRecordFromEntity(expense *entity.ExpenseRecord) *ExpenseRecordModel {
	return &ExpenseRecordModel{
		ID:        expense.ID,
		Amount:    expense.Amount,
		Label:     expense.Label,
		Note:      expense.Note,
		Date:      expense.Date,
		CreatedAt: expense.CreatedAt,
	}
}
