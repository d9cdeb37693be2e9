// Package dateutil converts user-friendly date formats to Go layouts and
// parses the human-readable dates found in front matter.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// LongLayout is the only layout front matter dates are parsed with,
// e.g. "March 4, 2024". It is the Go form of the "long" preset.
const LongLayout = "January 2, 2006"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has
// unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10) // Go layouts run a few bytes longer

	i := 0
	for i < len(format) {
		// Bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			// Content inside brackets is copied as is
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2 // Skip past closing bracket
			continue
		}

		// Longest token first, per dateTokens order: MMMM before MMM before MM
		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			// Literal character, e.g. a separator
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ParseLong parses a "MonthName day, year" date such as "June 5, 2023".
// Surrounding whitespace is ignored.
func ParseLong(value string) (time.Time, error) {
	return time.Parse(LongLayout, strings.TrimSpace(value))
}

// FormatLong formats t with LongLayout.
func FormatLong(t time.Time) string {
	return t.Format(LongLayout)
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto": current date in YYYY-MM-DD format
//   - "auto:FORMAT": current date in a custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset": current date using a named preset (iso, european, us, long)
//   - anything else is returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	// Not an auto value: passthrough
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	formatPart := DefaultDateFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:"):
		// Format tokens are case sensitive, so slice the original value
		formatPart = value[len("auto:"):]
		if formatPart == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		// Preset names are case-insensitive
		if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
			formatPart = preset
		}
	default:
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	goFmt, err := ParseDateFormat(formatPart)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}
