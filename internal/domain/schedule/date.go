package schedule

import (
	"regexp"
	"time"
)

const DateLayout = "2006-01-02"

// DatePattern is the shape check callers run before any date parsing.
var DatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDateFormat reports whether date looks like YYYY-MM-DD and parses
// as a real calendar date.
func IsValidDateFormat(date string) bool {
	if !DatePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// IsDateInPast reports whether date (YYYY-MM-DD) falls strictly before
// now's calendar day. Format validation is the caller's responsibility.
// now is injected so the midnight boundary can be pinned in tests.
func IsDateInPast(date string, now time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}
