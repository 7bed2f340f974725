package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized is returned when a non-admin attempts a privileged transition
	ErrUnauthorized = errors.New("operation requires administrator rights")

	// ErrAlreadyProcessed is returned when a transition targets an ad
	// that already reached a terminal state
	ErrAlreadyProcessed = errors.New("ad is already processed")

	// ErrAdNotFound is returned when an ad id does not exist
	ErrAdNotFound = errors.New("ad not found")

	// ErrEmptyReason is returned when a rejection has no reason text bound
	ErrEmptyReason = errors.New("rejection reason is empty")

	// ErrPublishFailed is returned when channel delivery fails. The ad
	// stays approved and unpublished, ready for a retry.
	ErrPublishFailed = errors.New("channel publication failed")
)

// ValidationError reports a draft field that failed its constraint.
// The caller re-requests the same field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// IncompleteDraftError reports finalize called with missing fields
type IncompleteDraftError struct {
	Missing []string
}

func (e *IncompleteDraftError) Error() string {
	return "draft is incomplete: missing " + strings.Join(e.Missing, ", ")
}
