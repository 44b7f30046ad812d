package domain

import (
	"time"
)

// DateLayout is the date-only format used for all persisted dates.
// The persisted JSON stays readable and sortable as plain text.
const DateLayout = "2006-01-02"

// WarrantyDays is the fixed coverage window added to the sale date.
const WarrantyDays = 45

// ParseDate parses a date-only string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidArgument.WithDetails("invalid date: " + s).WithCause(err)
	}
	return t, nil
}

// FormatDate formats a time as a date-only string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current date as a date-only string.
func Today() string {
	return FormatDate(time.Now())
}

// AddDays returns the date shifted by the given number of calendar days.
// An unparseable input yields an empty string; callers treat that as
// "no date" rather than failing the whole write.
func AddDays(s string, days int) string {
	t, err := ParseDate(s)
	if err != nil {
		return ""
	}
	return FormatDate(t.AddDate(0, 0, days))
}

// MonthIndex returns the zero-based month (0-11) of a date string,
// or -1 if the date does not parse.
func MonthIndex(s string) int {
	t, err := ParseDate(s)
	if err != nil {
		return -1
	}
	return int(t.Month()) - 1
}

// DaysUntil returns the number of whole days from today until the given
// date. Negative when the date is in the past, 0 for today or an
// unparseable input.
func DaysUntil(s string) int {
	t, err := ParseDate(s)
	if err != nil {
		return 0
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(today).Hours() / 24)
}
