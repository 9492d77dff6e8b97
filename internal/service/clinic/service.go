// internal/service/clinic/service.go
package clinic

import (
	"context"
	"time"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/domain/clinic"

	"go.uber.org/zap"
)

type CatalogService struct {
	catalog clinic.Catalog
	timeout time.Duration
	logger  *zap.Logger
}

func NewCatalogService(catalog clinic.Catalog, timeout time.Duration, logger *zap.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, timeout: timeout, logger: logger}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]clinic.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	services, err := s.catalog.ListServices(ctx)
	if err != nil {
		s.logger.Error("service catalog listing failed", zap.Error(err))
		return nil, err
	}
	return services, nil
}
