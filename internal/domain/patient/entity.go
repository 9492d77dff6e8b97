// internal/domain/patient/entity.go
package patient

import (
	"context"
	"time"
)

// Patient is a registry row. patient_id is the externally assigned clinic
// identifier, not a database surrogate key. Age is nil when unknown.
type Patient struct {
	PatientID string
	FirstName string
	LastName  string
	Age       *int
	Gender    string
	Village   string
	CreatedAt time.Time
}

// Registry exposes the read-only patient table.
type Registry interface {
	ListAll(ctx context.Context) ([]Patient, error)
	Count(ctx context.Context) (int, error)
}
