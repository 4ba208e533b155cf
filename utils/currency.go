package utils

import (
	"strconv"
	"strings"
)

// FormatCurrency formats an amount in Colombian pesos for log lines,
// e.g. 1234567 -> "$1.234.567". COP has no decimal places.
func FormatCurrency(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{digits[start:i]}, groups...)
	}

	return sign + "$" + strings.Join(groups, ".")
}
