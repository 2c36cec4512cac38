package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound    = errors.New("catalog: product not found")
	ErrRepositoryRequired = errors.New("catalog: product repository is required")
	ErrHandleRequired     = errors.New("catalog: product handle is required")
)

// NotFoundError reports a missing product lookup.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrProductNotFound
}

// IsNotFound reports whether err represents a missing product lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound)
}
