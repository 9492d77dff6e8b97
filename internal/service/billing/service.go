// internal/service/billing/service.go
package billing

import (
	"context"
	"errors"
	"time"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/billing"
	xerrors "github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/errors"

	"go.uber.org/zap"
)

type BillingService struct {
	store   billing.Store
	timeout time.Duration
	logger  *zap.Logger
}

func NewBillingService(store billing.Store, timeout time.Duration, logger *zap.Logger) *BillingService {
	return &BillingService{store: store, timeout: timeout, logger: logger}
}

// Settings returns the persisted singleton, falling back to the fixed
// defaults when no row was ever saved. Only the missing-row case is
// substituted; a failing store still fails.
func (s *BillingService) Settings(ctx context.Context) (billing.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stored, err := s.store.Get(ctx)
	if errors.Is(err, xerrors.ErrNotFound) {
		return billing.Defaults(), nil
	}
	if err != nil {
		s.logger.Error("billing settings lookup failed", zap.Error(err))
		return billing.Settings{}, err
	}
	return *stored, nil
}
