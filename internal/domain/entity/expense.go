package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseRecord represents one recorded operating expense. Expenses do
// not mutate balances; their per-month sum is the input subtracted from
// gross income before distribution.
type ExpenseRecord struct {
	ID        uuid.UUID
	Amount    int64
	Label     string
	Note      string
	Date      time.Time
	CreatedAt time.Time
}

// NewExpenseRecord creates a new ExpenseRecord entity.
func NewExpenseRecord(amount int64, label, note string, date time.Time) *ExpenseRecord {
	return &ExpenseRecord{
		ID:        uuid.New(),
		Amount:    amount,
		Label:     label,
		Note:      note,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}
