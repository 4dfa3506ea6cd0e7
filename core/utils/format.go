package utils

import (
	"strconv"
	"unicode/utf8"
)

// FormatFloat renders v in the shortest decimal form that round-trips back
// to the same float64, which keeps report values close to how they were
// written in the input.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Truncate shortens s to at most max bytes, marking cut content with an
// ellipsis. The cut never splits a multi-byte rune, so truncated report
// cells stay valid UTF-8. Report tables use it to keep long records on
// one row.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	if max > 3 {
		cut = max - 3
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if max <= 3 {
		return s[:cut]
	}
	return s[:cut] + "..."
}

// Plural returns singular when n is 1 and plural otherwise.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
