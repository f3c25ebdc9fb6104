package engine

import "errors"

var (
	// ErrInvalidRange is returned for malformed or policy-violating date ranges.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrNotAvailable is returned when a candidate range conflicts with an
	// existing booking or a blocked calendar date.
	ErrNotAvailable = errors.New("property is not available for the requested dates")
	// ErrNotCancellable is returned when a booking is in a terminal state or
	// the cancellation window has elapsed.
	ErrNotCancellable = errors.New("booking cannot be cancelled")
	// ErrInvalidTransition is returned for status transitions the lifecycle
	// does not allow.
	ErrInvalidTransition = errors.New("invalid booking status transition")
	// ErrReferenceCollision is returned when the unique-reference retry budget
	// is exhausted.
	ErrReferenceCollision = errors.New("could not generate a unique booking reference")
)
