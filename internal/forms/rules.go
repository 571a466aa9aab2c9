package forms

import (
	"html"
	"strconv"
	"strings"
	"unicode/utf8"
)

func trim(s string) string { return strings.TrimSpace(s) }

// escape neutralizes markup-significant characters so stored values are
// safe to interpolate into rendered HTML.
func escape(s string) string { return html.EscapeString(s) }

// lengthIn checks the rune length of an already-trimmed value.
// max == 0 means unbounded.
func lengthIn(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	if n < min {
		return false
	}
	if max > 0 && n > max {
		return false
	}
	return true
}

// floatIn parses a decimal field and checks the inclusive range.
func floatIn(s string, min, max float64) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}

// intIn parses an integer field and checks the inclusive range.
func intIn(s string, min, max int) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}
