// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BalanceKind classifies a balance record.
type BalanceKind string

const (
	BalanceKindParticipant BalanceKind = "participant"
	BalanceKindFund        BalanceKind = "fund"
	BalanceKindCategory    BalanceKind = "category"
)

// Well-known fund balance keys. Participant and category keys are
// lowercase slugs taken from configuration.
const (
	KeyEmergencyFund = "emergency-fund"
	KeySavingsFund   = "savings-fund"
)

// HistoryKind marks a history entry as a credit or a debit.
type HistoryKind string

const (
	HistoryKindCredit HistoryKind = "credit"
	HistoryKindDebit  HistoryKind = "debit"
)

// Balance represents one keyed balance record: a participant's personal
// balance, a singleton fund, or an operational category. Amounts are
// integer minor currency units and never go negative.
type Balance struct {
	Key       string
	Kind      BalanceKind
	Label     string
	Amount    int64
	Target    int64 // emergency fund savings target, zero for other records
	History   []HistoryEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBalance creates a new Balance entity with a zero amount.
func NewBalance(key string, kind BalanceKind, label string) *Balance {
	now := time.Now().UTC()

	return &Balance{
		Key:       key,
		Kind:      kind,
		Label:     label,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HistoryEntry is an immutable record of one credit or debit against a
// specific balance. Entries are append-only and never reordered.
type HistoryEntry struct {
	ID         uuid.UUID
	BalanceKey string
	Timestamp  time.Time
	Amount     int64
	Kind       HistoryKind
	Note       string
}

// NewHistoryEntry creates a new HistoryEntry for the given balance.
func NewHistoryEntry(balanceKey string, amount int64, kind HistoryKind, note string) *HistoryEntry {
	return &HistoryEntry{
		ID:         uuid.New(),
		BalanceKey: balanceKey,
		Timestamp:  time.Now().UTC(),
		Amount:     amount,
		Kind:       kind,
		Note:       note,
	}
}
