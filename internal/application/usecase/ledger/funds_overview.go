package ledger

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/team-dashboard/backend/internal/application/adapter"
	"github.com/team-dashboard/backend/internal/domain/entity"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
)

// FundsOverviewOutput summarizes fund totals for the dashboard header.
type FundsOverviewOutput struct {
	EmergencyTotal  int64
	EmergencyTarget int64
	// EmergencyProgress is the percentage of the target reached, one
	// decimal place, capped at 100.
	EmergencyProgress decimal.Decimal
	SavingsTotal      int64
	ParticipantTotal  int64
	CategoryTotal     int64
}

// FundsOverviewUseCase aggregates current balances into the summary the
// dashboard shows above the per-record listing.
type FundsOverviewUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewFundsOverviewUseCase creates a new FundsOverviewUseCase instance.
func NewFundsOverviewUseCase(ledgerRepo adapter.LedgerRepository) *FundsOverviewUseCase {
	return &FundsOverviewUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute computes the overview from the latest committed balances.
func (uc *FundsOverviewUseCase) Execute(ctx context.Context) (*FundsOverviewOutput, error) {
	balances, err := uc.ledgerRepo.FindAllBalances(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrTargetNotFound) {
			balances = nil
		} else {
			return nil, err
		}
	}

	out := &FundsOverviewOutput{EmergencyProgress: decimal.Zero}
	for _, b := range balances {
		switch {
		case b.Key == entity.KeyEmergencyFund:
			out.EmergencyTotal = b.Amount
			out.EmergencyTarget = b.Target
		case b.Key == entity.KeySavingsFund:
			out.SavingsTotal = b.Amount
		case b.Kind == entity.BalanceKindParticipant:
			out.ParticipantTotal += b.Amount
		case b.Kind == entity.BalanceKindCategory:
			out.CategoryTotal += b.Amount
		}
	}

	if out.EmergencyTarget > 0 {
		progress := decimal.NewFromInt(out.EmergencyTotal).
			Div(decimal.NewFromInt(out.EmergencyTarget)).
			Mul(decimal.NewFromInt(100)).
			Round(1)
		if progress.GreaterThan(decimal.NewFromInt(100)) {
			progress = decimal.NewFromInt(100)
		}
		out.EmergencyProgress = progress
	}

	return out, nil
}
