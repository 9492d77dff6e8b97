// internal/service/activity/aggregator.go
package activity

import (
	"time"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/activity"
)

// The aggregator reduces the unioned event stream into the two derived
// views the query planner and the count summarizer share. Both are pure
// functions of the event slice: nothing is cached, insertion order is
// irrelevant, and a patient with events from both origins on the same
// day counts once.

// LastByPatient groups events by patient and keeps the maximum calendar
// date. Patients with no events simply have no entry.
func LastByPatient(events []activity.Event) map[string]time.Time {
	last := make(map[string]time.Time, len(events))
	for _, ev := range events {
		day := activity.Day(ev.OccurredOn)
		if cur, ok := last[ev.PatientID]; !ok || day.After(cur) {
			last[ev.PatientID] = day
		}
	}
	return last
}

// ActiveOn returns the distinct set of patients with at least one event
// on the given calendar day.
func ActiveOn(events []activity.Event, day time.Time) map[string]struct{} {
	day = activity.Day(day)
	active := make(map[string]struct{})
	for _, ev := range events {
		if activity.Day(ev.OccurredOn).Equal(day) {
			active[ev.PatientID] = struct{}{}
		}
	}
	return active
}
