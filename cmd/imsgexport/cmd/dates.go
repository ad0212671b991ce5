package cmd

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the literal formats accepted by --start/--end.
// Date-only values are interpreted as midnight UTC.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// parseDateArg parses a date or datetime literal in one of the accepted
// layouts.
func parseDateArg(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (expected formats like 2023-01-02 or \"2023-01-02 15:04:05\")", value)
}

// optionalDate parses a possibly-empty flag value into an optional bound.
func optionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDateArg(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
