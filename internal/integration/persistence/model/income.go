package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// IncomeTransactionModel represents the income_transactions table.
type IncomeTransactionModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	GrossAmount int64          `gorm:"not null"`
	SourceLabel string         `gorm:"type:varchar(255);not null"`
	ProjectID   *uuid.UUID     `gorm:"type:uuid;index"`
	ProjectName string         `gorm:"type:varchar(255)"`
	Date        time.Time      `gorm:"type:date;not null;index"`
	CreatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the IncomeTransactionModel.
func (IncomeTransactionModel) TableName() string {
	return "income_transactions"
}

// ToEntity converts an IncomeTransactionModel to a domain IncomeTransaction entity.
func (m *IncomeTransactionModel) ToEntity() *entity.IncomeTransaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.IncomeTransaction{
		ID:          m.ID,
		GrossAmount: m.GrossAmount,
		SourceLabel: m.SourceLabel,
		ProjectID:   m.ProjectID,
		ProjectName: m.ProjectName,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		DeletedAt:   deletedAt,
	}
}

// IncomeTransactionFromEntity creates an IncomeTransactionModel from a domain entity.
func IncomeTransactionFromEntity(income *entity.IncomeTransaction) *IncomeTransactionModel {
	var deletedAt gorm.DeletedAt
	if income.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *income.DeletedAt, Valid: true}
	}

	return &IncomeTransactionModel{
		ID:          income.ID,
		GrossAmount: income.GrossAmount,
		SourceLabel: income.SourceLabel,
		ProjectID:   income.ProjectID,
		ProjectName: income.ProjectName,
		Date:        income.Date,
		CreatedAt:   income.CreatedAt,
		DeletedAt:   deletedAt,
	}
}
