// internal/service/patient/project.go
package patient

import (
	"time"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/activity"
	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/patient"
)

// project maps a registry row plus its derived last-activity date onto
// the external record. Demographics pass through untouched. The zeroed
// serviceStatus placeholder stands in for a billing-balance computation
// the frontend already renders; keep the shape until that lands.
func project(p patient.Patient, lastDay time.Time, hasActivity bool) patient.Record {
	rec := patient.Record{
		PatientID: p.PatientID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Age:       p.Age,
		Gender:    p.Gender,
		Village:   p.Village,
		CreatedAt: p.CreatedAt,
	}
	if hasActivity {
		d := activity.FormatDay(lastDay)
		rec.LastEncounterDate = &d
	}
	return rec
}
