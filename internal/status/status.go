// Package status derives display state for a deadline from its due date.
// Everything here is pure: callers pass the current time explicitly.
package status

import (
	"math"
	"strconv"
	"time"
)

// Bucket classifies a deadline relative to the current calendar day.
type Bucket string

const (
	BucketOverdue  Bucket = "overdue"
	BucketToday    Bucket = "today"
	BucketUpcoming Bucket = "upcoming"
)

// Classify maps a due date to a bucket and a human label. Both inputs are
// normalized to midnight of their UTC calendar day first — due dates are
// stored as midnight UTC, so UTC is the calendar frame — and time-of-day
// or zone of either input never affects the result.
func Classify(due, now time.Time) (Bucket, string) {
	diffDays := daysUntil(due, now)
	switch {
	case diffDays < 0:
		return BucketOverdue, "Overdue"
	case diffDays == 0:
		return BucketToday, "Today"
	case diffDays == 1:
		return BucketUpcoming, "Tomorrow"
	case diffDays <= 7:
		return BucketUpcoming, strconv.Itoa(diffDays) + " days"
	default:
		return BucketUpcoming, "Upcoming"
	}
}

// ElapsedPercent reports how much of the span between a deadline's creation
// and its due date has passed, rounded and clamped to [0,100]. A deadline
// past due is always 100. A zero-length span (due at or before creation) is
// treated as already due and returns 100.
func ElapsedPercent(due, created, now time.Time) int {
	if now.After(due) {
		return 100
	}
	total := due.Sub(created)
	if total <= 0 {
		return 100
	}
	elapsed := now.Sub(created)
	pct := math.Round(float64(elapsed) / float64(total) * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

func daysUntil(due, now time.Time) int {
	d := startOfDay(due.UTC()).Sub(startOfDay(now.UTC()))
	return int(math.Ceil(d.Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
