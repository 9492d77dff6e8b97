// internal/domain/clinic/service.go
package clinic

import "context"

// Service is a billable catalog item (consultation, dressing, lab panel...).
type Service struct {
	ID       int64   `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Catalog lists the service table, ordered by name.
type Catalog interface {
	ListServices(ctx context.Context) ([]Service, error)
}
