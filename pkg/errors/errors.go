// Package errors defines the typed service errors shared by the store and
// the HTTP layer.
package errors

import (
	"errors"
	"fmt"
)

// ResourceNotFoundError signals that a stored resource does not exist.
type ResourceNotFoundError struct {
	Resource string
	ID       string
}

func (e *ResourceNotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// NewRunNotFoundError returns a not-found error for a run record.
func NewRunNotFoundError(id string) error {
	return &ResourceNotFoundError{Resource: "run", ID: id}
}

// IsResourceNotFoundError reports whether err is any not-found error.
func IsResourceNotFoundError(err error) bool {
	var notFound *ResourceNotFoundError
	return errors.As(err, &notFound)
}

// UnknownWorkloadError signals a batch request naming a workload the
// registry does not know.
type UnknownWorkloadError struct {
	Name string
}

func (e *UnknownWorkloadError) Error() string {
	return fmt.Sprintf("unknown workload %q", e.Name)
}

// NewUnknownWorkloadError returns an error for an unregistered workload name.
func NewUnknownWorkloadError(name string) error {
	return &UnknownWorkloadError{Name: name}
}

// IsUnknownWorkloadError reports whether err names an unregistered workload.
func IsUnknownWorkloadError(err error) bool {
	var unknown *UnknownWorkloadError
	return errors.As(err, &unknown)
}
