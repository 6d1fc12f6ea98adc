package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

// fakeLedgerRepo is an in-memory LedgerRepository honoring the same
// commit semantics as the persistence layer: all-or-nothing commits and
// a per-store lock serializing check-then-act sequences.
type fakeLedgerRepo struct {
	mu       sync.Mutex
	balances map[string]*entity.Balance
	history  map[string][]*entity.HistoryEntry
	incomes  []*entity.IncomeTransaction
	audits   []*entity.AuditLogEntry

	// contendedCommits makes the next N commits fail with ErrContention.
	contendedCommits int
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		balances: make(map[string]*entity.Balance),
		history:  make(map[string][]*entity.HistoryEntry),
	}
}

func (f *fakeLedgerRepo) seedBalance(key string, kind entity.BalanceKind, amount int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := entity.NewBalance(key, kind, key)
	b.Amount = amount
	f.balances[key] = b
}

func (f *fakeLedgerRepo) CommitDistribution(ctx context.Context, commit adapter.DistributionCommit) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.contendedCommits > 0 {
		f.contendedCommits--
		return fmt.Errorf("commit conflict: %w", domainerror.ErrContention)
	}

	for _, bucket := range commit.Allocation.Buckets {
		balance, ok := f.balances[bucket.Key]
		if !ok {
			balance = entity.NewBalance(bucket.Key, bucket.Kind, bucket.Label)
			if bucket.Key == entity.KeyEmergencyFund {
				balance.Target = commit.EmergencyFundTarget
			}
			f.balances[bucket.Key] = balance
		}
		balance.Amount += bucket.Amount
		balance.UpdatedAt = time.Now().UTC()

		entry := entity.NewHistoryEntry(bucket.Key, bucket.Amount, entity.HistoryKindCredit, commit.Note)
		f.history[bucket.Key] = append(f.history[bucket.Key], entry)
	}

	f.incomes = append(f.incomes, commit.Income)
	f.audits = append(f.audits, commit.Audit)
	return nil
}

func (f *fakeLedgerRepo) CommitWithdrawal(ctx context.Context, commit adapter.WithdrawalCommit) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.contendedCommits > 0 {
		f.contendedCommits--
		return fmt.Errorf("commit conflict: %w", domainerror.ErrContention)
	}

	balance, ok := f.balances[commit.TargetKey]
	if !ok {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeTargetNotFound,
			fmt.Sprintf("no balance record for %q", commit.TargetKey),
			domainerror.ErrTargetNotFound,
		)
	}

	if commit.Amount > balance.Amount {
		return domainerror.NewInsufficientFundsError(
			fmt.Sprintf("withdrawal %d exceeds balance %d", commit.Amount, balance.Amount),
			balance.Amount,
		)
	}

	balance.Amount -= commit.Amount
	balance.UpdatedAt = time.Now().UTC()

	entry := entity.NewHistoryEntry(commit.TargetKey, commit.Amount, entity.HistoryKindDebit, commit.Note)
	f.history[commit.TargetKey] = append(f.history[commit.TargetKey], entry)
	f.audits = append(f.audits, commit.Audit)
	return nil
}

func (f *fakeLedgerRepo) FindBalance(ctx context.Context, key string) (*entity.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	balance, ok := f.balances[key]
	if !ok {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeTargetNotFound,
			fmt.Sprintf("no balance record for %q", key),
			domainerror.ErrTargetNotFound,
		)
	}
	copied := *balance
	return &copied, nil
}

func (f *fakeLedgerRepo) FindAllBalances(ctx context.Context) ([]*entity.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*entity.Balance, 0, len(f.balances))
	for _, b := range f.balances {
		copied := *b
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (f *fakeLedgerRepo) FindHistory(ctx context.Context, balanceKey string, limit int) ([]*entity.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := f.history[balanceKey]
	out := make([]*entity.HistoryEntry, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

func (f *fakeLedgerRepo) totalBalance() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	var total int64
	for _, b := range f.balances {
		total += b.Amount
	}
	return total
}

// fakeExpenseRepo is an in-memory ExpenseRepository.
type fakeExpenseRepo struct {
	mu       sync.Mutex
	expenses []*entity.ExpenseRecord
	audits   []*entity.AuditLogEntry
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *entity.ExpenseRecord, audit *entity.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expenses = append(f.expenses, expense)
	f.audits = append(f.audits, audit)
	return nil
}

func (f *fakeExpenseRepo) SumInPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var total int64
	for _, e := range f.expenses {
		if !e.Date.Before(start) && e.Date.Before(end) {
			total += e.Amount
		}
	}
	return total, nil
}

func (f *fakeExpenseRepo) FindRecent(ctx context.Context, limit int) ([]*entity.ExpenseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*entity.ExpenseRecord, 0, limit)
	for i := len(f.expenses) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.expenses[i])
	}
	return out, nil
}

// fakeAuditRepo is an in-memory AuditLogRepository.
type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*entity.AuditLogEntry
}

func (f *fakeAuditRepo) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) List(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*entity.AuditLogEntry, 0, limit)
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.entries[i])
	}
	return out, nil
}

// fakeIncomeRepo is an in-memory IncomeRepository.
type fakeIncomeRepo struct {
	mu      sync.Mutex
	incomes []*entity.IncomeTransaction
}

func (f *fakeIncomeRepo) FindRecent(ctx context.Context, limit int) ([]*entity.IncomeTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*entity.IncomeTransaction, 0, limit)
	for i := len(f.incomes) - 1; i >= 0 && len(out) < limit; i-- {
		if f.incomes[i].DeletedAt == nil {
			out = append(out, f.incomes[i])
		}
	}
	return out, nil
}

func (f *fakeIncomeRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, income := range f.incomes {
		if income.ID == id {
			now := time.Now().UTC()
			income.DeletedAt = &now
			return nil
		}
	}
	return domainerror.NewLedgerError(
		domainerror.ErrCodeTargetNotFound,
		fmt.Sprintf("no income transaction %s", id),
		domainerror.ErrTargetNotFound,
	)
}
