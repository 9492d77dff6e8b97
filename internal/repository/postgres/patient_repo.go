// internal/repository/postgres/patient_repo.go
package postgres

import (
	"context"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/patient"
	xerrors "github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PatientRepository reads the patient registry. The registry is
// append-only from this core's point of view: intake creates rows,
// nothing here mutates them.
type PatientRepository struct {
	db *pgxpool.Pool
}

func NewPatientRepository(db *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{db: db}
}

// ListAll returns every registry row. Clinic scale keeps this in the low
// thousands, so filtering and ordering happen in the service layer
// against one consistent snapshot of the rows.
func (r *PatientRepository) ListAll(ctx context.Context) ([]patient.Patient, error) {
	query := `
		SELECT patient_id, first_name, last_name, age, gender, village, created_at
		FROM patients
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, xerrors.DataSource(err)
	}
	defer rows.Close()

	var patients []patient.Patient
	for rows.Next() {
		var p patient.Patient
		if err := rows.Scan(
			&p.PatientID, &p.FirstName, &p.LastName,
			&p.Age, &p.Gender, &p.Village, &p.CreatedAt,
		); err != nil {
			return nil, xerrors.DataSource(err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.DataSource(err)
	}

	return patients, nil
}

// Count returns total registry size, unfiltered by activity.
func (r *PatientRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&n); err != nil {
		return 0, xerrors.DataSource(err)
	}
	return n, nil
}
