// internal/domain/activity/event.go
package activity

import (
	"context"
	"time"
)

// Event is one recorded contact with a patient, reduced to the calendar
// date on which it happened. Events come from two independent tables
// (encounters and treatments) and carry no identity of their own.
type Event struct {
	PatientID  string
	OccurredOn time.Time
}

// Source produces the unioned event stream from both origin tables.
// An empty clinic yields an empty slice; a failed query yields an error.
type Source interface {
	Events(ctx context.Context) ([]Event, error)
}

// Day truncates t to its calendar date, normalized to midnight UTC so
// dates from the database and dates from the clock compare equal.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a normalized calendar date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// FormatDay renders a calendar date back to YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format("2006-01-02")
}
