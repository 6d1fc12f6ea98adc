package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

func TestWithdraw(t *testing.T) {
	t.Run("rejects non-positive amount before any read", func(t *testing.T) {
		ledgerRepo := newFakeLedgerRepo()
		uc := NewWithdrawUseCase(ledgerRepo)

		err := uc.Execute(context.Background(), WithdrawInput{TargetKey: "firdaus", Amount: 0})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("got %v, want ErrInvalidAmount", err)
		}
	})

	t.Run("unknown target returns target not found", func(t *testing.T) {
		ledgerRepo := newFakeLedgerRepo()
		uc := NewWithdrawUseCase(ledgerRepo)

		err := uc.Execute(context.Background(), WithdrawInput{TargetKey: "nobody", Amount: 1000})
		if !errors.Is(err, domainerror.ErrTargetNotFound) {
			t.Errorf("got %v, want ErrTargetNotFound", err)
		}
	})

	t.Run("withdrawal exceeding balance reports the current balance and leaves it untouched", func(t *testing.T) {
		ledgerRepo := newFakeLedgerRepo()
		ledgerRepo.seedBalance("firdaus", entity.BalanceKindParticipant, 500_000)
		uc := NewWithdrawUseCase(ledgerRepo)

		err := uc.Execute(context.Background(), WithdrawInput{TargetKey: "firdaus", Amount: 600_000})
		if !errors.Is(err, domainerror.ErrInsufficientFunds) {
			t.Fatalf("got %v, want ErrInsufficientFunds", err)
		}

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) {
			t.Fatalf("expected LedgerError, got %T", err)
		}
		if ledgerErr.CurrentBalance != 500_000 {
			t.Errorf("reported balance = %d, want 500000", ledgerErr.CurrentBalance)
		}

		balance, findErr := ledgerRepo.FindBalance(context.Background(), "firdaus")
		if findErr != nil {
			t.Fatalf("balance lookup failed: %v", findErr)
		}
		if balance.Amount != 500_000 {
			t.Errorf("balance = %d, want unchanged 500000", balance.Amount)
		}
		if len(ledgerRepo.audits) != 0 {
			t.Error("failed withdrawal left an audit entry behind")
		}
	})

	t.Run("successful withdrawal debits, appends history and one audit entry", func(t *testing.T) {
		ledgerRepo := newFakeLedgerRepo()
		ledgerRepo.seedBalance("firdaus", entity.BalanceKindParticipant, 500_000)
		uc := NewWithdrawUseCase(ledgerRepo)

		if err := uc.Execute(context.Background(), WithdrawInput{TargetKey: "Firdaus", Amount: 200_000, Note: "rent"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		balance, err := ledgerRepo.FindBalance(context.Background(), "firdaus")
		if err != nil {
			t.Fatalf("balance lookup failed: %v", err)
		}
		if balance.Amount != 300_000 {
			t.Errorf("balance = %d, want 300000", balance.Amount)
		}

		history, err := ledgerRepo.FindHistory(context.Background(), "firdaus", 10)
		if err != nil {
			t.Fatalf("history lookup failed: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("history entries = %d, want 1", len(history))
		}
		if history[0].Kind != entity.HistoryKindDebit {
			t.Errorf("history kind = %s, want debit", history[0].Kind)
		}
		if history[0].Note != "rent" {
			t.Errorf("history note = %q, want %q", history[0].Note, "rent")
		}

		if len(ledgerRepo.audits) != 1 {
			t.Errorf("audit entries = %d, want 1", len(ledgerRepo.audits))
		}
		if len(ledgerRepo.audits) == 1 && ledgerRepo.audits[0].Action != entity.AuditActionWithdraw {
			t.Errorf("audit action = %s, want withdraw", ledgerRepo.audits[0].Action)
		}
	})

	t.Run("surfaces contention after retries are exhausted", func(t *testing.T) {
		ledgerRepo := newFakeLedgerRepo()
		ledgerRepo.seedBalance("firdaus", entity.BalanceKindParticipant, 500_000)
		ledgerRepo.contendedCommits = maxCommitAttempts
		uc := NewWithdrawUseCase(ledgerRepo)

		err := uc.Execute(context.Background(), WithdrawInput{TargetKey: "firdaus", Amount: 100_000})
		if !errors.Is(err, domainerror.ErrContention) {
			t.Errorf("got %v, want ErrContention", err)
		}
	})
}

func TestWithdraw_ConcurrentAgainstSameTarget(t *testing.T) {
	// Two concurrent withdrawals of 400000 against a balance of 500000:
	// exactly one may succeed; the loser must see the updated balance.
	ledgerRepo := newFakeLedgerRepo()
	ledgerRepo.seedBalance("firdaus", entity.BalanceKindParticipant, 500_000)
	uc := NewWithdrawUseCase(ledgerRepo)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = uc.Execute(context.Background(), WithdrawInput{TargetKey: "firdaus", Amount: 400_000})
		}(i)
	}
	wg.Wait()

	var successes, insufficient int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domainerror.ErrInsufficientFunds):
			insufficient++
			var ledgerErr *domainerror.LedgerError
			if errors.As(err, &ledgerErr) && ledgerErr.CurrentBalance != 100_000 {
				t.Errorf("losing withdrawal saw balance %d, want 100000", ledgerErr.CurrentBalance)
			}
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 || insufficient != 1 {
		t.Fatalf("got %d successes and %d insufficient-funds failures, want exactly 1 and 1", successes, insufficient)
	}

	balance, err := ledgerRepo.FindBalance(context.Background(), "firdaus")
	if err != nil {
		t.Fatalf("balance lookup failed: %v", err)
	}
	if balance.Amount != 100_000 {
		t.Errorf("final balance = %d, want 100000", balance.Amount)
	}
}
