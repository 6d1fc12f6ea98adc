package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
	"github.com/team-dashboard/backend/internal/domain/valueobject"
)

// RecordExpenseInput represents the input for recording an operating expense.
type RecordExpenseInput struct {
	Amount int64
	Label  string
	Note   string
	Date   time.Time
}

// RecordExpenseOutput represents the output of recording an expense.
type RecordExpenseOutput struct {
	ExpenseID uuid.UUID
}

// RecordExpenseUseCase appends an operating expense record. Expenses do
// not mutate balances; they feed the period total subtracted before
// income distribution.
type RecordExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewRecordExpenseUseCase creates a new RecordExpenseUseCase instance.
func NewRecordExpenseUseCase(expenseRepo adapter.ExpenseRepository) *RecordExpenseUseCase {
	return &RecordExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense recording.
func (uc *RecordExpenseUseCase) Execute(ctx context.Context, input RecordExpenseInput) (*RecordExpenseOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"expense amount must be a positive integer",
			domainerror.ErrInvalidAmount,
		)
	}

	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyLabel,
			"expense label must not be empty",
			domainerror.ErrEmptyLabel,
		)
	}

	expense := entity.NewExpenseRecord(input.Amount, label, input.Note, input.Date)

	audit := entity.NewAuditLogEntry(
		entity.AuditActionAdd,
		"expense",
		expense.ID.String(),
		fmt.Sprintf("Recorded expense %s for %s", valueobject.FormatIDR(input.Amount), label),
	)

	if err := uc.expenseRepo.Create(ctx, expense, audit); err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	return &RecordExpenseOutput{ExpenseID: expense.ID}, nil
}
