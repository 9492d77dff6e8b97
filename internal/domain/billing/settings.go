// internal/domain/billing/settings.go
package billing

import "context"

// Settings is the clinic-wide billing configuration singleton.
type Settings struct {
	Currency          string  `json:"currency"`
	RequirePrepayment bool    `json:"requirePrepayment"`
	ConsultationFee   float64 `json:"consultationFee"`
}

// Defaults is what the dashboard gets when no settings row has ever been
// saved. This is a configuration fallback, not error masking: a failed
// query still fails.
func Defaults() Settings {
	return Settings{Currency: "USD", RequirePrepayment: false, ConsultationFee: 0}
}

// Store reads the persisted singleton. Returns xerrors.ErrNotFound when
// no row exists.
type Store interface {
	Get(ctx context.Context) (*Settings, error)
}
