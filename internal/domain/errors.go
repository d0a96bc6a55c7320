package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("venue not found")

// ValidationError describes a malformed request. It is detected before any
// external call and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UpstreamError wraps a catalog (or other collaborator) failure. The core
// surfaces it as a single terminal error for the request; retry policy, if
// any, belongs to the collaborator's own client.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }
