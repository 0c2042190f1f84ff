package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a monetary value with thousands separators and
// no decimals, e.g. 300000 -> "300,000".
func FormatAmount(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// FormatPercent renders a 0..1 rate as a percentage with one decimal,
// e.g. 0.695 -> "69.5%".
func FormatPercent(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', 1, 64) + "%"
}
