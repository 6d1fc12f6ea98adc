package dto

import (
	"time"

	"github.com/team-dashboard/backend/internal/application/usecase/ledger"
	"github.com/team-dashboard/backend/internal/domain/entity"
	"github.com/team-dashboard/backend/internal/domain/valueobject"
)

// RecordIncomeRequest represents the request body for income recording.
// Amounts are integer minor currency units.
type RecordIncomeRequest struct {
	Amount      int64   `json:"amount" binding:"required"`
	SourceLabel string  `json:"source_label" binding:"required,min=1,max=255"`
	ProjectID   *string `json:"project_id,omitempty"`
	Note        string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	Date        string  `json:"date" binding:"required"`
}

// RecordExpenseRequest represents the request body for expense recording.
type RecordExpenseRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Label  string `json:"label" binding:"required,min=1,max=255"`
	Note   string `json:"note,omitempty" binding:"omitempty,max=1000"`
	Date   string `json:"date" binding:"required"`
}

// WithdrawRequest represents the request body for a withdrawal.
type WithdrawRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Note   string `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// AllocationBucketResponse represents one credited bucket in the
// distribution response.
type AllocationBucketResponse struct {
	Key           string `json:"key"`
	Kind          string `json:"kind"`
	Label         string `json:"label"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
}

// RecordIncomeResponse represents the response for income recording.
type RecordIncomeResponse struct {
	TransactionID      string                     `json:"transaction_id"`
	Policy             string                     `json:"policy"`
	GrossAmount        int64                      `json:"gross_amount"`
	PeriodExpenseTotal int64                      `json:"period_expense_total"`
	Remainder          int64                      `json:"remainder"`
	RoundingLoss       int64                      `json:"rounding_loss"`
	Buckets            []AllocationBucketResponse `json:"buckets"`
}

// BalanceResponse represents a balance record in API responses.
type BalanceResponse struct {
	Key           string `json:"key"`
	Kind          string `json:"kind"`
	Label         string `json:"label"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	Target        int64  `json:"target,omitempty"`
	UpdatedAt     string `json:"updated_at"`
}

// HistoryEntryResponse represents one history entry in API responses.
type HistoryEntryResponse struct {
	ID            string `json:"id"`
	Timestamp     string `json:"timestamp"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	Kind          string `json:"kind"`
	Note          string `json:"note,omitempty"`
}

// BalanceDetailResponse represents a balance with its recent history.
type BalanceDetailResponse struct {
	Balance BalanceResponse        `json:"balance"`
	History []HistoryEntryResponse `json:"history"`
}

// AuditLogEntryResponse represents one audit log entry in API responses.
type AuditLogEntryResponse struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"`
	Action     string `json:"action"`
	TargetKind string `json:"target_kind"`
	TargetID   string `json:"target_id,omitempty"`
	Summary    string `json:"summary"`
}

// ExpenseResponse represents an expense record in API responses.
type ExpenseResponse struct {
	ID            string `json:"id"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	Label         string `json:"label"`
	Note          string `json:"note,omitempty"`
	Date          string `json:"date"`
	CreatedAt     string `json:"created_at"`
}

// IncomeResponse represents an income transaction in API responses.
type IncomeResponse struct {
	ID            string  `json:"id"`
	GrossAmount   int64   `json:"gross_amount"`
	AmountDisplay string  `json:"amount_display"`
	SourceLabel   string  `json:"source_label"`
	ProjectID     *string `json:"project_id,omitempty"`
	ProjectName   string  `json:"project_name,omitempty"`
	Date          string  `json:"date"`
	CreatedAt     string  `json:"created_at"`
}

// FundsOverviewResponse represents the dashboard funds summary.
type FundsOverviewResponse struct {
	EmergencyTotal        int64  `json:"emergency_total"`
	EmergencyTotalDisplay string `json:"emergency_total_display"`
	EmergencyTarget       int64  `json:"emergency_target"`
	EmergencyProgress     string `json:"emergency_progress"`
	SavingsTotal          int64  `json:"savings_total"`
	SavingsTotalDisplay   string `json:"savings_total_display"`
	ParticipantTotal      int64  `json:"participant_total"`
	CategoryTotal         int64  `json:"category_total"`
}

// ToRecordIncomeResponse converts a RecordIncomeOutput to its response DTO.
func ToRecordIncomeResponse(output *ledger.RecordIncomeOutput) RecordIncomeResponse {
	buckets := make([]AllocationBucketResponse, len(output.Allocation.Buckets))
	for i, b := range output.Allocation.Buckets {
		buckets[i] = AllocationBucketResponse{
			Key:           b.Key,
			Kind:          string(b.Kind),
			Label:         b.Label,
			Amount:        b.Amount,
			AmountDisplay: valueobject.FormatIDR(b.Amount),
		}
	}

	return RecordIncomeResponse{
		TransactionID:      output.TransactionID.String(),
		Policy:             output.Allocation.PolicyName,
		GrossAmount:        output.Allocation.GrossAmount,
		PeriodExpenseTotal: output.Allocation.PeriodExpenseTotal,
		Remainder:          output.Allocation.Remainder,
		RoundingLoss:       output.Allocation.RoundingLoss,
		Buckets:            buckets,
	}
}

// ToBalanceResponse converts a Balance entity to its response DTO.
func ToBalanceResponse(balance *entity.Balance) BalanceResponse {
	return BalanceResponse{
		Key:           balance.Key,
		Kind:          string(balance.Kind),
		Label:         balance.Label,
		Amount:        balance.Amount,
		AmountDisplay: valueobject.FormatIDR(balance.Amount),
		Target:        balance.Target,
		UpdatedAt:     balance.UpdatedAt.Format(time.RFC3339),
	}
}

// ToHistoryEntryResponse converts a HistoryEntry entity to its response DTO.
func ToHistoryEntryResponse(entry *entity.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:            entry.ID.String(),
		Timestamp:     entry.Timestamp.Format(time.RFC3339),
		Amount:        entry.Amount,
		AmountDisplay: valueobject.FormatIDR(entry.Amount),
		Kind:          string(entry.Kind),
		Note:          entry.Note,
	}
}

// ToAuditLogEntryResponse converts an AuditLogEntry entity to its response DTO.
func ToAuditLogEntryResponse(entry *entity.AuditLogEntry) AuditLogEntryResponse {
	return AuditLogEntryResponse{
		ID:         entry.ID.String(),
		Timestamp:  entry.Timestamp.Format(time.RFC3339),
		Action:     string(entry.Action),
		TargetKind: entry.TargetKind,
		TargetID:   entry.TargetID,
		Summary:    entry.Summary,
	}
}

// ToExpenseResponse converts an ExpenseRecord entity to its response DTO.
func ToExpenseResponse(expense *entity.ExpenseRecord) ExpenseResponse {
	return ExpenseResponse{
		ID:            expense.ID.String(),
		Amount:        expense.Amount,
		AmountDisplay: valueobject.FormatIDR(expense.Amount),
		Label:         expense.Label,
		Note:          expense.Note,
		Date:          expense.Date.Format("2006-01-02"),
		CreatedAt:     expense.CreatedAt.Format(time.RFC3339),
	}
}

// ToIncomeResponse converts an IncomeTransaction entity to its response DTO.
func ToIncomeResponse(income *entity.IncomeTransaction) IncomeResponse {
	var projectID *string
	if income.ProjectID != nil {
		id := income.ProjectID.String()
		projectID = &id
	}

	return IncomeResponse{
		ID:            income.ID.String(),
		GrossAmount:   income.GrossAmount,
		AmountDisplay: valueobject.FormatIDR(income.GrossAmount),
		SourceLabel:   income.SourceLabel,
		ProjectID:     projectID,
		ProjectName:   income.ProjectName,
		Date:          income.Date.Format("2006-01-02"),
		CreatedAt:     income.CreatedAt.Format(time.RFC3339),
	}
}

// ToFundsOverviewResponse converts a FundsOverviewOutput to its response DTO.
func ToFundsOverviewResponse(output *ledger.FundsOverviewOutput) FundsOverviewResponse {
	return FundsOverviewResponse{
		EmergencyTotal:        output.EmergencyTotal,
		EmergencyTotalDisplay: valueobject.FormatIDR(output.EmergencyTotal),
		EmergencyTarget:       output.EmergencyTarget,
		EmergencyProgress:     output.EmergencyProgress.String(),
		SavingsTotal:          output.SavingsTotal,
		SavingsTotalDisplay:   valueobject.FormatIDR(output.SavingsTotal),
		ParticipantTotal:      output.ParticipantTotal,
		CategoryTotal:         output.CategoryTotal,
	}
}
