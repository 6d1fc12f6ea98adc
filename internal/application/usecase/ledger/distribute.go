// Package ledger contains the fund distribution and balance ledger use cases.
package ledger

import (
	"fmt"
	"time"

	domainerror "github.com/team-dashboard/backend/internal/domain/error"
	"github.com/team-dashboard/backend/internal/domain/valueobject"
)

// Distribute computes the allocation of one incoming payment after the
// period's operating expenses. It is pure: same inputs always yield the
// same allocation, and no state is touched on failure.
//
// All share math is integer floor division. Fractional remainders are not
// redistributed; they accumulate in Allocation.RoundingLoss and belong to
// no bucket.
func Distribute(grossIncome, periodExpenseTotal int64, policy valueobject.DistributionPolicy, roster []string) (valueobject.Allocation, error) {
	if periodExpenseTotal <= 0 {
		return valueobject.Allocation{}, domainerror.NewLedgerError(
			domainerror.ErrCodePrerequisiteMissing,
			"record at least one expense for the period before distributing income",
			domainerror.ErrPrerequisiteMissing,
		)
	}

	remainder := grossIncome - periodExpenseTotal
	if remainder <= 0 {
		return valueobject.Allocation{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInsufficientRemainder,
			fmt.Sprintf("income %d does not exceed period expense total %d", grossIncome, periodExpenseTotal),
			domainerror.ErrInsufficientRemainder,
		)
	}

	allocation := valueobject.Allocation{
		PolicyName:         policy.Name,
		GrossAmount:        grossIncome,
		PeriodExpenseTotal: periodExpenseTotal,
		Remainder:          remainder,
	}

	for _, share := range policy.Shares {
		shareAmount := remainder * share.Percent / 100

		if share.PerHead {
			if len(roster) == 0 {
				continue
			}
			// Divided evenly across the roster; the inner remainder is dropped.
			perHead := shareAmount / int64(len(roster))
			for _, member := range roster {
				allocation.Buckets = append(allocation.Buckets, valueobject.AllocationBucket{
					Key:    member,
					Kind:   share.Kind,
					Label:  displayLabel(member),
					Amount: perHead,
				})
			}
			continue
		}

		allocation.Buckets = append(allocation.Buckets, valueobject.AllocationBucket{
			Key:    share.Key,
			Kind:   share.Kind,
			Label:  share.Label,
			Amount: shareAmount,
		})
	}

	allocation.RoundingLoss = remainder - allocation.Total()

	return allocation, nil
}

// periodBounds returns the calendar-month accounting period containing
// the given date as a half-open UTC window [start, end).
func periodBounds(date time.Time) (start, end time.Time) {
	d := date.UTC()
	start = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// displayLabel renders a roster slug as a display label.
func displayLabel(slug string) string {
	if slug == "" {
		return slug
	}
	b := []byte(slug)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
