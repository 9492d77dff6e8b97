// internal/repository/postgres/activity_repo.go
package postgres

import (
	"context"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/activity"
	xerrors "github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepository is the event source adapter: it reads both origin
// tables and normalizes them into one (patient_id, calendar date) stream.
// Encounters contribute the date portion of their creation instant (in
// the database session zone, same convention the counts queries use);
// treatments contribute their explicit visit date. No dedup here —
// duplicates collapse when the aggregator builds sets and maxima.
type ActivityRepository struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const eventUnionQuery = `
	SELECT patient_id, DATE(created_at) AS occurred_on FROM encounters
	UNION ALL
	SELECT patient_id, visit_date::date AS occurred_on FROM treatments
`

// Events returns the unioned event stream. A failed query is reported as
// a data source error, never substituted with an empty set.
func (r *ActivityRepository) Events(ctx context.Context) ([]activity.Event, error) {
	rows, err := r.db.Query(ctx, eventUnionQuery)
	if err != nil {
		return nil, xerrors.DataSource(err)
	}
	defer rows.Close()

	var events []activity.Event
	for rows.Next() {
		var ev activity.Event
		if err := rows.Scan(&ev.PatientID, &ev.OccurredOn); err != nil {
			return nil, xerrors.DataSource(err)
		}
		ev.OccurredOn = activity.Day(ev.OccurredOn)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.DataSource(err)
	}

	return events, nil
}
