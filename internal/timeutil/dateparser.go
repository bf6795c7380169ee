package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format.
// Returns the calendar date at UTC midnight (see Date).
// For ambiguous dates (like 05/06/2024), ISO format (YYYY-MM-DD) is tried first.
//
// Valid inputs:
//   - "2024-03-15" (ISO format)
//   - "15/03/2024" (Brazilian format, as shown by the portal)
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-03-15 or 15/03/2024)")
	}

	t, err := time.ParseInLocation("2006-01-02", input, time.UTC)
	if err == nil {
		return t, nil
	}

	t, err = time.ParseInLocation("02/01/2006", input, time.UTC)
	if err == nil {
		return t, nil
	}

	return time.Time{}, buildDateParseError(input)
}

var (
	yearOnlyRe    = regexp.MustCompile(`^\d{4}$`)
	isoPartialRe  = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	euroPartialRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
)

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-03-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case euroPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", input, input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-03-15 or 15/03/2024)", input)
	}
}
