package events

import "errors"

// Event bridge errors.
var (
	// ErrNilTarget is returned when AwaitEvent is given a nil target.
	ErrNilTarget = errors.New("events: nil target")

	// ErrNoEventName is returned when AwaitEvent is given an empty event name.
	ErrNoEventName = errors.New("events: empty event name")
)
