package valueobject

import "strconv"

// FormatIDR renders an amount in minor currency units as a display
// string with thousands separators, e.g. 1800000 -> "Rp 1.800.000".
// Display formatting only; ledger math never touches strings.
func FormatIDR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	grouped := make([]byte, 0, len(digits)+len(digits)/3+4)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	out := "Rp " + string(grouped)
	if negative {
		out = "-" + out
	}
	return out
}
