// internal/repository/postgres/billing_settings_repo.go
package postgres

import (
	"context"
	"errors"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/billing"
	xerrors "github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BillingSettingsRepository struct {
	db *pgxpool.Pool
}

func NewBillingSettingsRepository(db *pgxpool.Pool) *BillingSettingsRepository {
	return &BillingSettingsRepository{db: db}
}

// Get reads the settings singleton. A clinic that has never saved
// settings gets ErrNotFound; the service layer substitutes defaults.
func (r *BillingSettingsRepository) Get(ctx context.Context) (*billing.Settings, error) {
	query := `
		SELECT currency, require_prepayment, consultation_fee
		FROM billing_settings
		LIMIT 1
	`

	var s billing.Settings
	err := r.db.QueryRow(ctx, query).Scan(&s.Currency, &s.RequirePrepayment, &s.ConsultationFee)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, xerrors.DataSource(err)
	}

	return &s, nil
}
