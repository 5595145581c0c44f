package entity

import "errors"

// Domain errors shared across usecases and repositories. Transport-level
// mapping to HTTP status codes lives in internal/errors.
var (
	// ErrInvalidSlot is returned for photo slot indices outside [1,5].
	ErrInvalidSlot = errors.New("invalid photo slot: must be between 1 and 5")

	// ErrEmptySlot is returned when an operation targets an unoccupied slot.
	ErrEmptySlot = errors.New("no photo in this slot")

	// ErrSelfSwipe is returned when a user tries to swipe on themselves.
	ErrSelfSwipe = errors.New("cannot swipe on yourself")

	// ErrNotFound is returned when a profile, swipe or match does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict signals a uniqueness violation from a concurrent write.
	// Match creation treats it as success (the match already exists).
	ErrConflict = errors.New("record already exists")

	// ErrLikeLimit is returned when the daily like quota is exhausted.
	ErrLikeLimit = errors.New("daily like limit reached")

	// ErrStorageFailure wraps object storage put failures. Delete failures
	// are logged and swallowed instead.
	ErrStorageFailure = errors.New("object storage failure")

	// ErrUnauthorized is returned when no principal could be resolved or
	// the principal does not own the target resource.
	ErrUnauthorized = errors.New("not authorized")
)
