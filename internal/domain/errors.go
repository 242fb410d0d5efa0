package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a reference cannot be resolved to any file.
	ErrNotFound = errors.New("reference not found")
	// ErrIOFailure marks a resolution that failed because a file or archive
	// could not be read. It is always reported together with ErrNotFound.
	ErrIOFailure = errors.New("file unreadable")
	// ErrBatchInFlight is returned when a panel is already running a batch.
	ErrBatchInFlight = errors.New("a batch is already running for this panel")
	// ErrTemplateNotFound is returned for unknown template names.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrEmptyTemplateName is returned when a template is saved without a name.
	ErrEmptyTemplateName = errors.New("template name must not be empty")
)

// ResolveError carries the reference that failed to resolve.
type ResolveError struct {
	Reference string
	Err       error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Reference, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

func notFoundError(ref string) error {
	return &ResolveError{Reference: ref, Err: ErrNotFound}
}

func ioFailureError(ref string, cause error) error {
	return &ResolveError{Reference: ref, Err: fmt.Errorf("%w: %w: %w", ErrNotFound, ErrIOFailure, cause)}
}
