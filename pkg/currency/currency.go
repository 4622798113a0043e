package currency

import (
	"strconv"
	"strings"
)

// Amounts are integer minor units. Display format is rupiah style with
// dot-grouped thousands, e.g. Format(12500) == "Rp 12.500".

func Format(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("Rp ")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// Parse strips everything but digits from a display string. An empty or
// unparseable result is 0, never an error.
func Parse(s string) int64 {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
