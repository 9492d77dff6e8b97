// internal/repository/postgres/service_repo.go
package postgres

import (
	"context"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/clinic"
	xerrors "github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// ListServices returns the billable service catalog ordered by name.
func (r *ServiceRepository) ListServices(ctx context.Context) ([]clinic.Service, error) {
	query := `
		SELECT id, code, name, price, category
		FROM services
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, xerrors.DataSource(err)
	}
	defer rows.Close()

	var services []clinic.Service
	for rows.Next() {
		var s clinic.Service
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Price, &s.Category); err != nil {
			return nil, xerrors.DataSource(err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.DataSource(err)
	}

	return services, nil
}
