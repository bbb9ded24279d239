package probe

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is.
var (
	// ErrMissingCapability means the client no longer exposes a required operation.
	ErrMissingCapability = errors.New("missing capability")

	// ErrAPICallFailed means the probe list call failed.
	ErrAPICallFailed = errors.New("api call failed")

	// ErrInvalidRepository means owner or repo was empty.
	ErrInvalidRepository = errors.New("owner and repository name must be non-empty")
)

// MissingCapabilityError reports the first capability found absent.
type MissingCapabilityError struct {
	Name Capability
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingCapability, e.Name)
}

// Unwrap lets errors.Is match ErrMissingCapability.
func (e *MissingCapabilityError) Unwrap() error {
	return ErrMissingCapability
}

// APICallError wraps the cause of a failed probe call unchanged.
type APICallError struct {
	Cause error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("%s: %v", ErrAPICallFailed, e.Cause)
}

// Unwrap exposes both ErrAPICallFailed and the underlying cause.
func (e *APICallError) Unwrap() []error {
	return []error{ErrAPICallFailed, e.Cause}
}
