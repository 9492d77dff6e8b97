package patient

import (
	"context"
	"errors"

	activitydomain "github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/activity"
	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/patient"
)

// Compile-time checks that the mocks satisfy the domain contracts.
var (
	_ patient.Registry      = (*MockRegistry)(nil)
	_ activitydomain.Source = (*MockEventSource)(nil)
)

// MockRegistry is a func-field mock of the patient registry.
type MockRegistry struct {
	ListAllFunc func(ctx context.Context) ([]patient.Patient, error)
	CountFunc   func(ctx context.Context) (int, error)
}

func (m *MockRegistry) ListAll(ctx context.Context) ([]patient.Patient, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errors.New("ListAllFunc not implemented in mock")
}

func (m *MockRegistry) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, errors.New("CountFunc not implemented in mock")
}

// MockEventSource is a func-field mock of the unioned event stream.
type MockEventSource struct {
	EventsFunc func(ctx context.Context) ([]activitydomain.Event, error)
}

func (m *MockEventSource) Events(ctx context.Context) ([]activitydomain.Event, error) {
	if m.EventsFunc != nil {
		return m.EventsFunc(ctx)
	}
	return nil, errors.New("EventsFunc not implemented in mock")
}

func staticRegistry(patients []patient.Patient) *MockRegistry {
	return &MockRegistry{
		ListAllFunc: func(context.Context) ([]patient.Patient, error) { return patients, nil },
		CountFunc:   func(context.Context) (int, error) { return len(patients), nil },
	}
}

func staticEvents(events []activitydomain.Event) *MockEventSource {
	return &MockEventSource{
		EventsFunc: func(context.Context) ([]activitydomain.Event, error) { return events, nil },
	}
}
