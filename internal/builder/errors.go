package builder

import "errors"

var (
	// ErrIndexOutOfRange is returned when an operation addresses a position
	// outside the current selection list. The index is never clamped.
	ErrIndexOutOfRange = errors.New("selection index out of range")

	// ErrInvalidField is returned when an update targets an unknown field
	// name or an enumerated value outside the allowed set.
	ErrInvalidField = errors.New("invalid field")

	// ErrSubmitInFlight is returned by Session.Save while a previous save is
	// still waiting on the archive.
	ErrSubmitInFlight = errors.New("submit already in flight")

	// ErrAlreadySubmitted is returned by Session.Save when the submission log
	// shows a draft with identical content was already confirmed.
	ErrAlreadySubmitted = errors.New("program already submitted")
)
