// Package format renders numbers and dates for on-screen and printed
// invoice text using Indian conventions.
package format

import (
	"strconv"
	"strings"
	"time"
)

// Number formats a value with exactly two decimals and en-IN digit
// grouping: the low three integer digits form one group, every higher
// pair its own group (12345678.9 -> "1,23,45,678.90").
func Number(value float64) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	grouped := groupIndian(intPart)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(grouped)
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// Date renders a date as DD-MM-YYYY.
func Date(t time.Time) string {
	return t.Format("02-01-2006")
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}
