// internal/domain/patient/dto.go
package patient

import "time"

// Record is the projected patient shape the dashboard consumes. Field
// names are a frozen contract with the frontend; in particular the
// derived last-activity date ships as lastEncounterDate (null when the
// patient has no recorded events) and serviceStatus is a zeroed
// placeholder until billing balances are computed for real.
type Record struct {
	PatientID         string        `json:"patientId"`
	FirstName         string        `json:"firstName"`
	LastName          string        `json:"lastName"`
	Age               *int          `json:"age"`
	Gender            string        `json:"gender"`
	Village           string        `json:"village"`
	LastEncounterDate *string       `json:"lastEncounterDate"`
	CreatedAt         time.Time     `json:"createdAt"`
	ServiceStatus     ServiceStatus `json:"serviceStatus"`
}

type ServiceStatus struct {
	Balance      float64 `json:"balance"`
	BalanceToday float64 `json:"balanceToday"`
}

// Counts is the summary the dashboard header polls. All three counters
// are derived from the event union and the registry, never from a
// (possibly truncated) listing.
type Counts struct {
	Today int `json:"today"`
	Date  int `json:"date"`
	All   int `json:"all"`
}
