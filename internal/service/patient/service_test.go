package patient

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	activitydomain "github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/activity"
	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/patient"
	xerrors "github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func day(s string) time.Time {
	d, err := activitydomain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newService(reg patient.Registry, src activitydomain.Source) *Service {
	s := NewPatientService(reg, src, 5*time.Second, zap.NewNop())
	s.now = func() time.Time { return fixedNow }
	return s
}

func mkPatient(id string, createdAt time.Time) patient.Patient {
	age := 30
	return patient.Patient{
		PatientID: id,
		FirstName: "First" + id,
		LastName:  "Last" + id,
		Age:       &age,
		Gender:    "F",
		Village:   "Wau",
		CreatedAt: createdAt,
	}
}

func ids(records []patient.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.PatientID)
	}
	return out
}

// The §-style base scenario: A registered first with no events, B
// registered next with an event today, C registered last with an event
// yesterday.
func scenario() (*MockRegistry, *MockEventSource) {
	t1 := fixedNow.Add(-72 * time.Hour)
	t2 := fixedNow.Add(-48 * time.Hour)
	t3 := fixedNow.Add(-24 * time.Hour)
	registry := staticRegistry([]patient.Patient{
		mkPatient("A", t1),
		mkPatient("B", t2),
		mkPatient("C", t3),
	})
	events := staticEvents([]activitydomain.Event{
		{PatientID: "B", OccurredOn: activitydomain.Day(fixedNow)},
		{PatientID: "C", OccurredOn: activitydomain.Day(fixedNow.Add(-24 * time.Hour))},
	})
	return registry, events
}

func TestListAllOrdering(t *testing.T) {
	registry, events := scenario()
	svc := newService(registry, events)

	records, err := svc.List(context.Background(), Query{})
	require.NoError(t, err)

	// B (today) before C (yesterday) before A (no activity).
	assert.Equal(t, []string{"B", "C", "A"}, ids(records))
	assert.Nil(t, records[2].LastEncounterDate)
	require.NotNil(t, records[0].LastEncounterDate)
	assert.Equal(t, "2024-06-15", *records[0].LastEncounterDate)
}

func TestListActiveToday(t *testing.T) {
	registry, events := scenario()
	svc := newService(registry, events)

	records, err := svc.List(context.Background(), Query{Today: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids(records))
}

func TestListActiveOnDate(t *testing.T) {
	registry, events := scenario()
	svc := newService(registry, events)

	records, err := svc.List(context.Background(), Query{Date: "2024-06-14"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, ids(records))
}

func TestListInvalidDate(t *testing.T) {
	registry, events := scenario()
	svc := newService(registry, events)

	_, err := svc.List(context.Background(), Query{Date: "14/06/2024"})
	assert.ErrorIs(t, err, xerrors.ErrInvalidArgument)
}

func TestSelectorPrecedence(t *testing.T) {
	registry, events := scenario()
	svc := newService(registry, events)

	// today beats date beats search; first match wins deterministically.
	records, err := svc.List(context.Background(), Query{Today: true, Date: "2024-06-14", Search: "A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids(records))

	// With today absent, a malformed date still wins over search and fails.
	_, err = svc.List(context.Background(), Query{Date: "garbage", Search: "A"})
	assert.ErrorIs(t, err, xerrors.ErrInvalidArgument)

	records, err = svc.List(context.Background(), Query{Date: "2024-06-14", Search: "A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, ids(records))
}

func TestSearchMatchesIDAndNames(t *testing.T) {
	registry, events := scenario()
	svc := newService(registry, events)

	records, err := svc.List(context.Background(), Query{Search: "firstb"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids(records))

	records, err = svc.List(context.Background(), Query{Search: "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, ids(records))
}

func TestEmptySearchEqualsAll(t *testing.T) {
	registry, events := scenario()
	svc := newService(registry, events)

	all, err := svc.List(context.Background(), Query{})
	require.NoError(t, err)
	searched, err := svc.List(context.Background(), Query{Search: ""})
	require.NoError(t, err)

	assert.Equal(t, all, searched)
}

func TestCreatedAtTieBreak(t *testing.T) {
	sameDay := day("2024-06-10")
	older := mkPatient("OLD", fixedNow.Add(-96*time.Hour))
	newer := mkPatient("NEW", fixedNow.Add(-1*time.Hour))
	registry := staticRegistry([]patient.Patient{older, newer})
	events := staticEvents([]activitydomain.Event{
		{PatientID: "OLD", OccurredOn: sameDay},
		{PatientID: "NEW", OccurredOn: sameDay},
	})
	svc := newService(registry, events)

	// Equal last-activity dates: later registration sorts first, every time.
	for i := 0; i < 5; i++ {
		records, err := svc.List(context.Background(), Query{})
		require.NoError(t, err)
		assert.Equal(t, []string{"NEW", "OLD"}, ids(records))
	}
}

func TestLimitDefaultsAndCeiling(t *testing.T) {
	patients := make([]patient.Patient, 0, 1200)
	for i := 0; i < 1200; i++ {
		patients = append(patients, mkPatient(fmt.Sprintf("P%04d", i), fixedNow.Add(-time.Duration(i)*time.Minute)))
	}
	registry := staticRegistry(patients)
	events := staticEvents(nil)
	svc := newService(registry, events)

	records, err := svc.List(context.Background(), Query{})
	require.NoError(t, err)
	assert.Len(t, records, DefaultLimit)

	records, err = svc.List(context.Background(), Query{Limit: 5000})
	require.NoError(t, err)
	assert.Len(t, records, MaxLimit)

	records, err = svc.List(context.Background(), Query{Limit: 7})
	require.NoError(t, err)
	assert.Len(t, records, 7)

	_, err = svc.List(context.Background(), Query{Limit: -1})
	assert.ErrorIs(t, err, xerrors.ErrInvalidArgument)
}

func TestLimitAppliesToActiveModesToo(t *testing.T) {
	// The unified rule: active-today is bounded the same way as ALL.
	patients := make([]patient.Patient, 0, 600)
	eventList := make([]activitydomain.Event, 0, 600)
	for i := 0; i < 600; i++ {
		p := mkPatient(fmt.Sprintf("P%04d", i), fixedNow.Add(-time.Duration(i)*time.Minute))
		patients = append(patients, p)
		eventList = append(eventList, activitydomain.Event{PatientID: p.PatientID, OccurredOn: activitydomain.Day(fixedNow)})
	}
	svc := newService(staticRegistry(patients), staticEvents(eventList))

	records, err := svc.List(context.Background(), Query{Today: true})
	require.NoError(t, err)
	assert.Len(t, records, DefaultLimit)
}

func TestListPropagatesDataSourceError(t *testing.T) {
	registry, _ := scenario()
	broken := &MockEventSource{
		EventsFunc: func(context.Context) ([]activitydomain.Event, error) {
			return nil, xerrors.DataSource(errors.New("connection refused"))
		},
	}
	svc := newService(registry, broken)

	_, err := svc.List(context.Background(), Query{})
	assert.ErrorIs(t, err, xerrors.ErrDataSource)
}

func TestCounts(t *testing.T) {
	registry, events := scenario()
	svc := newService(registry, events)

	counts, err := svc.Counts(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, patient.Counts{Today: 1, Date: 1, All: 3}, counts)

	counts, err = svc.Counts(context.Background(), "2024-06-14")
	require.NoError(t, err)
	// all stays registry size no matter which date is asked about.
	assert.Equal(t, patient.Counts{Today: 1, Date: 1, All: 3}, counts)

	counts, err = svc.Counts(context.Background(), "2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, patient.Counts{Today: 1, Date: 0, All: 3}, counts)
}

func TestCountsInvalidDate(t *testing.T) {
	registry, events := scenario()
	svc := newService(registry, events)

	_, err := svc.Counts(context.Background(), "notadate")
	assert.ErrorIs(t, err, xerrors.ErrInvalidArgument)
}

func TestCountsNotDerivedFromListing(t *testing.T) {
	// More active patients than any listing limit could return.
	patients := make([]patient.Patient, 0, 1100)
	eventList := make([]activitydomain.Event, 0, 1100)
	for i := 0; i < 1100; i++ {
		p := mkPatient(fmt.Sprintf("P%04d", i), fixedNow.Add(-time.Duration(i)*time.Minute))
		patients = append(patients, p)
		eventList = append(eventList, activitydomain.Event{PatientID: p.PatientID, OccurredOn: activitydomain.Day(fixedNow)})
	}
	svc := newService(staticRegistry(patients), staticEvents(eventList))

	counts, err := svc.Counts(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1100, counts.Today)
	assert.Equal(t, 1100, counts.All)
}

func TestProjectionShape(t *testing.T) {
	registry, events := scenario()
	svc := newService(registry, events)

	records, err := svc.List(context.Background(), Query{})
	require.NoError(t, err)

	for _, r := range records {
		assert.Equal(t, patient.ServiceStatus{Balance: 0, BalanceToday: 0}, r.ServiceStatus)
	}
}
