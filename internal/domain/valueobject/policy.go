package valueobject

import "github.com/team-dashboard/backend/internal/domain/entity"

// PolicyShare is one fixed-percentage slice of a distribution policy.
// A PerHead share is divided evenly across the participant roster using
// integer floor division; the inner remainder is dropped.
type PolicyShare struct {
	Key     string
	Kind    entity.BalanceKind
	Label   string
	Percent int64
	PerHead bool
}

// DistributionPolicy is a named allocation scheme. Policies are fixed
// data, selected by name from configuration; the ledger engine never
// hard-codes percentages.
type DistributionPolicy struct {
	Name   string
	Shares []PolicyShare
}

const (
	// PolicyExecutiveSplit is the canonical scheme: 40% executive pay
	// divided per head, 30% emergency fund, 30% savings fund.
	PolicyExecutiveSplit = "executive-split"

	// PolicyCategorySplit is the legacy scheme: 40% operations, 10%
	// reserve, 10% leisure, 30% executive pay divided per head.
	PolicyCategorySplit = "category-split"
)

var policies = map[string]DistributionPolicy{
	PolicyExecutiveSplit: {
		Name: PolicyExecutiveSplit,
		Shares: []PolicyShare{
			{Key: "executive-pay", Kind: entity.BalanceKindParticipant, Label: "Executive Pay", Percent: 40, PerHead: true},
			{Key: entity.KeyEmergencyFund, Kind: entity.BalanceKindFund, Label: "Emergency Fund", Percent: 30},
			{Key: entity.KeySavingsFund, Kind: entity.BalanceKindFund, Label: "Savings Fund", Percent: 30},
		},
	},
	PolicyCategorySplit: {
		Name: PolicyCategorySplit,
		Shares: []PolicyShare{
			{Key: "operations", Kind: entity.BalanceKindCategory, Label: "Operations", Percent: 40},
			{Key: "reserve", Kind: entity.BalanceKindCategory, Label: "Reserve", Percent: 10},
			{Key: "leisure", Kind: entity.BalanceKindCategory, Label: "Leisure", Percent: 10},
			{Key: "executive-pay", Kind: entity.BalanceKindParticipant, Label: "Executive Pay", Percent: 30, PerHead: true},
		},
	},
}

// PolicyByName returns the registered policy with the given name.
func PolicyByName(name string) (DistributionPolicy, bool) {
	p, ok := policies[name]
	return p, ok
}

// PolicyNames returns the names of all registered policies.
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	return names
}
