// Package validate contains the pure input validation helpers used by the
// intake workflow. Every function is total: malformed input yields a rejection
// value, never a panic or an error chain.
package validate

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the fixed operator-facing date format, DD/MM/YYYY HH:MM:SS.
const DateLayout = "02/01/2006 15:04:05"

// TaxIDLength is the number of digits a tax id must reduce to.
const TaxIDLength = 11

// TaxID reports whether a raw tax id is acceptable. The field is optional, so
// empty input is valid; otherwise the input must reduce to exactly 11 digit
// characters after stripping everything else.
func TaxID(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return true
	}
	return len(DigitsOnly(raw)) == TaxIDLength
}

// DigitsOnly strips every non-digit character from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAmount parses a monetary amount from operator input. It accepts forms
// like "89.90", "89,90" and "R$ 89,90": currency markers and surrounding
// whitespace are stripped and the comma fraction separator is normalized.
// Negative or unparseable input is rejected. The result is rounded to two
// decimal places.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(raw, "R$", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)

	value, err := decimal.NewFromString(s)
	if err != nil || value.IsNegative() {
		return decimal.Decimal{}, false
	}
	return value.Round(2), true
}

// ParseDate parses an operator-supplied timestamp. "now" and "agora"
// (case-insensitive) yield the current time; anything else must match
// DateLayout exactly. time.Parse rejects impossible calendar dates such as
// 31/02, so no extra range check is needed.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "now", "agora":
		return time.Now(), true
	}

	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Sanitize trims surrounding whitespace and truncates the text to maxLength
// runes. This is a length guard for prompts and storage sizing only; injection
// safety comes from the store's parameter binding, not from sanitization.
func Sanitize(text string, maxLength int) string {
	s := strings.TrimSpace(text)
	runes := []rune(s)
	if len(runes) > maxLength {
		return string(runes[:maxLength])
	}
	return s
}
