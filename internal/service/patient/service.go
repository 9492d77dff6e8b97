// internal/service/patient/service.go
package patient

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/activity"
	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/patient"
	xerrors "github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/errors"
	agg "github.com/25ayu25/BGC-MedicalManagementSystem/internal/service/activity"

	"go.uber.org/zap"
)

const (
	// DefaultLimit applies when the caller sends no limit; MaxLimit is the
	// hard ceiling on response size. The same pair applies to every
	// selector mode.
	DefaultLimit = 500
	MaxLimit     = 1000
)

// Query carries the listing selectors. At most one of Today/Date/Search
// should be set; when a caller supplies several, precedence is
// Today > Date > Search > all, first match wins.
type Query struct {
	Today  bool
	Date   string
	Search string
	Limit  int
}

type Service struct {
	registry patient.Registry
	events   activity.Source
	timeout  time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewPatientService(registry patient.Registry, events activity.Source, timeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		events:   events,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
	}
}

// List selects patients per the query mode, joins each with its derived
// last-activity date and returns projected records in the contract
// order: last activity date descending, patients without activity last,
// ties broken by registration time descending.
func (s *Service) List(ctx context.Context, q Query) ([]patient.Record, error) {
	limit, err := resolveLimit(q.Limit)
	if err != nil {
		return nil, err
	}

	var onDate time.Time
	if !q.Today && q.Date != "" {
		onDate, err = activity.ParseDay(q.Date)
		if err != nil {
			return nil, xerrors.Invalid("date must be YYYY-MM-DD, got %q", q.Date)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	patients, err := s.registry.ListAll(ctx)
	if err != nil {
		s.logger.Error("patient listing failed", zap.Error(err))
		return nil, err
	}
	events, err := s.events.Events(ctx)
	if err != nil {
		s.logger.Error("event union failed", zap.Error(err))
		return nil, err
	}

	last := agg.LastByPatient(events)

	switch {
	case q.Today:
		patients = keepActive(patients, agg.ActiveOn(events, activity.Day(s.now())))
	case q.Date != "":
		patients = keepActive(patients, agg.ActiveOn(events, onDate))
	case q.Search != "":
		patients = keepMatching(patients, q.Search)
	}

	sortByActivity(patients, last)
	if len(patients) > limit {
		patients = patients[:limit]
	}

	records := make([]patient.Record, 0, len(patients))
	for _, p := range patients {
		d, ok := last[p.PatientID]
		records = append(records, project(p, d, ok))
	}
	return records, nil
}

// Counts derives the dashboard summary. All three counters come from the
// aggregation primitives directly, so a truncated listing never skews
// them; today and date share one event fetch.
func (s *Service) Counts(ctx context.Context, dateParam string) (patient.Counts, error) {
	today := activity.Day(s.now())
	onDate := today
	if dateParam != "" {
		var err error
		onDate, err = activity.ParseDay(dateParam)
		if err != nil {
			return patient.Counts{}, xerrors.Invalid("date must be YYYY-MM-DD, got %q", dateParam)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	events, err := s.events.Events(ctx)
	if err != nil {
		s.logger.Error("event union failed", zap.Error(err))
		return patient.Counts{}, err
	}
	total, err := s.registry.Count(ctx)
	if err != nil {
		s.logger.Error("patient count failed", zap.Error(err))
		return patient.Counts{}, err
	}

	return patient.Counts{
		Today: len(agg.ActiveOn(events, today)),
		Date:  len(agg.ActiveOn(events, onDate)),
		All:   total,
	}, nil
}

// Total reports registry size; used by the database health probe.
func (s *Service) Total(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.registry.Count(ctx)
}

func resolveLimit(requested int) (int, error) {
	switch {
	case requested < 0:
		return 0, xerrors.Invalid("limit must not be negative, got %d", requested)
	case requested == 0:
		return DefaultLimit, nil
	case requested > MaxLimit:
		return MaxLimit, nil
	}
	return requested, nil
}

func keepActive(patients []patient.Patient, active map[string]struct{}) []patient.Patient {
	kept := patients[:0:0]
	for _, p := range patients {
		if _, ok := active[p.PatientID]; ok {
			kept = append(kept, p)
		}
	}
	return kept
}

// keepMatching filters by case-insensitive substring over id and names.
// An empty term matches everything, same as the unfiltered listing.
func keepMatching(patients []patient.Patient, term string) []patient.Patient {
	term = strings.ToLower(term)
	kept := patients[:0:0]
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.PatientID), term) ||
			strings.Contains(strings.ToLower(p.FirstName), term) ||
			strings.Contains(strings.ToLower(p.LastName), term) {
			kept = append(kept, p)
		}
	}
	return kept
}

// sortByActivity applies the single ordering contract shared by every
// mode. createdAt is part of the comparator, not a fallback: two
// patients with the same last-activity date must keep the same relative
// order across calls.
func sortByActivity(patients []patient.Patient, last map[string]time.Time) {
	sort.SliceStable(patients, func(i, j int) bool {
		di, iOK := last[patients[i].PatientID]
		dj, jOK := last[patients[j].PatientID]
		if iOK != jOK {
			return iOK // patients with activity sort before those without
		}
		if iOK && !di.Equal(dj) {
			return di.After(dj)
		}
		return patients[i].CreatedAt.After(patients[j].CreatedAt)
	})
}
