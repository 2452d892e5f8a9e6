package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Permissive calendar parsing: uploads arrive with whatever layout the
// teacher's spreadsheet exported.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-2006",
	"01/02/2006",
}

func parseDate(field, s string) (time.Time, *RowDefect) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, coercionDefect(fmt.Sprintf("invalid date for %s: %q", field, s))
}

// parseMonth accepts YYYY-MM or a full date and normalizes to the first of
// the month.
func parseMonth(field, s string) (time.Time, *RowDefect) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01", s); err == nil {
		return t, nil
	}
	t, defect := parseDate(field, s)
	if defect != nil {
		return time.Time{}, defect
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

func parseFloatRange(field, s string, min, max float64) (float64, *RowDefect) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, coercionDefect(fmt.Sprintf("%s is not a number: %q", field, s))
	}
	if v < min || v > max {
		return 0, coercionDefect(fmt.Sprintf("%s out of range [%g,%g]: %q", field, min, max, s))
	}
	return v, nil
}

func parseIntRange(field, s string, min, max int) (int, *RowDefect) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, coercionDefect(fmt.Sprintf("%s is not a number: %q", field, s))
	}
	if v < min || v > max {
		return 0, coercionDefect(fmt.Sprintf("%s out of range [%d,%d]: %q", field, min, max, s))
	}
	return v, nil
}

func parseIntMin(field, s string, min int) (int, *RowDefect) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, coercionDefect(fmt.Sprintf("%s is not a number: %q", field, s))
	}
	if v < min {
		return 0, coercionDefect(fmt.Sprintf("%s must be at least %d: %q", field, min, s))
	}
	return v, nil
}

func parseFloat(field, s string) (float64, *RowDefect) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, coercionDefect(fmt.Sprintf("%s is not a number: %q", field, s))
	}
	return v, nil
}

// parseBool maps a fixed token set to true; everything else is false. The
// asymmetry (no false-token set) is intentional inherited policy — "yes" is
// false.
func parseBool(s string) bool {
	switch strings.TrimSpace(s) {
	case "true", "1", "TRUE", "True":
		return true
	}
	return false
}
