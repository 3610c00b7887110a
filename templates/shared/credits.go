package shared

import "strconv"

// FormatCredits renders a credits amount without trailing zeros and with the
// unit suffix. E.g. 500 -> "500 credits", 4.5 -> "4.5 credits".
func FormatCredits(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " credits"
}
