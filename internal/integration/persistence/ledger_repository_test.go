package persistence

import (
	"errors"
	"testing"

	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

func TestTranslateCommitError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		if err := translateCommitError(nil); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("domain errors pass through unchanged", func(t *testing.T) {
		in := domainerror.NewInsufficientFundsError("withdrawal exceeds current balance", 100000)
		out := translateCommitError(in)
		if !errors.Is(out, domainerror.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds to survive translation, got %v", out)
		}
	})

	t.Run("driver conflicts become contention", func(t *testing.T) {
		// Two commits racing on the first-ever credit of a bucket both
		// insert the balance row; the loser must be retryable, not a 500.
		conflicts := []string{
			`ERROR: duplicate key value violates unique constraint "balances_pkey" (SQLSTATE 23505)`,
			"UNIQUE constraint failed: balances.key",
			"ERROR: deadlock detected (SQLSTATE 40P01)",
			"ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)",
			"database is locked",
		}
		for _, msg := range conflicts {
			out := translateCommitError(errors.New(msg))
			if !errors.Is(out, domainerror.ErrContention) {
				t.Errorf("expected %q to translate to ErrContention, got %v", msg, out)
			}
		}
	})

	t.Run("connection failures become storage unavailable", func(t *testing.T) {
		out := translateCommitError(errors.New("dial tcp 127.0.0.1:5433: connect: connection refused"))
		if !errors.Is(out, domainerror.ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", out)
		}
	})

	t.Run("unrecognized errors surface as-is", func(t *testing.T) {
		in := errors.New("ERROR: value too long for type character varying(255) (SQLSTATE 22001)")
		if out := translateCommitError(in); !errors.Is(out, in) {
			t.Fatalf("expected the raw error back, got %v", out)
		}
	})
}
