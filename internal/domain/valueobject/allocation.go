// Package valueobject contains domain value objects for the Team Dashboard system.
package valueobject

import "github.com/team-dashboard/backend/internal/domain/entity"

// AllocationBucket is one (destination, amount) pair of a computed
// distribution. The key matches the target balance record's key.
type AllocationBucket struct {
	Key    string
	Kind   entity.BalanceKind
	Label  string
	Amount int64
}

// Allocation is the deterministic result of distributing an income
// remainder across the configured buckets. Amounts are floor-divided;
// RoundingLoss is the part of the remainder no bucket received.
type Allocation struct {
	PolicyName         string
	GrossAmount        int64
	PeriodExpenseTotal int64
	Remainder          int64
	RoundingLoss       int64
	Buckets            []AllocationBucket
}

// Total returns the sum of all bucket amounts.
func (a Allocation) Total() int64 {
	var total int64
	for _, b := range a.Buckets {
		total += b.Amount
	}
	return total
}

// BucketFor returns the bucket targeting the given balance key, if any.
func (a Allocation) BucketFor(key string) (AllocationBucket, bool) {
	for _, b := range a.Buckets {
		if b.Key == key {
			return b, true
		}
	}
	return AllocationBucket{}, false
}
