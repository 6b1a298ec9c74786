// Package dateutil supplies the calendar-day helpers the page core and its
// callers share. All values are date-only: local midnight, with any
// time-of-day component ignored by comparisons.
package dateutil

import "time"

// ISO is the layout of due-date text in raw page lines.
const ISO = "2006-01-02"

// Truncate strips the time-of-day component, returning local midnight of the
// same calendar day.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current calendar day.
func Today() time.Time {
	return Truncate(time.Now())
}

// Tomorrow returns the calendar day after today.
func Tomorrow() time.Time {
	return Today().AddDate(0, 0, 1)
}

// NextWeek returns the calendar day seven days from today.
func NextWeek() time.Time {
	return Today().AddDate(0, 0, 7)
}

// FormatISO renders t as zero-padded YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(ISO)
}

// ParseISO decodes a YYYY-MM-DD string. The error is non-nil for text that
// matches the shape but is not a calendar date (e.g. "2024-13-40").
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISO, s)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayLabel renders t the way due dates are shown in list views: "Jan 2".
func DayLabel(t time.Time) string {
	return t.Format("Jan 2")
}
