package xerrors

import (
	"errors"
	"fmt"
)

// Error taxonomy for the read core. InvalidArgument is the caller's
// fault and never retried; DataSource covers an unreachable store or a
// timed-out query and is never masked with an empty default (a clinic
// with zero activity must stay distinguishable from a broken database).
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDataSource      = errors.New("data source failure")
	ErrNotFound        = errors.New("resource not found")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Invalid builds an ErrInvalidArgument with a caller-facing message.
func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// DataSource marks a store-level failure so handlers can classify it.
func DataSource(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrDataSource, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
