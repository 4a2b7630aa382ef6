package helpers

import (
	"time"
)

// StartOfDay returns midnight of t's calendar day in t's location.
// "Today" views are local-day aligned.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DebeWindow returns [yesterday 00:00, today 00:00) relative to now.
// Entries created in this window compete for yesterday's most-liked list.
func DebeWindow(now time.Time) (from, before time.Time) {
	before = StartOfDay(now)
	from = before.AddDate(0, 0, -1)
	return from, before
}
