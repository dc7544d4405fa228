package domain

import "errors"

// Domain errors
var (
	// Not-found errors
	ErrEventNotFound    = errors.New("event not found")
	ErrDateNotFound     = errors.New("date not found")
	ErrSectorNotFound   = errors.New("sector not found")
	ErrSeatNotFound     = errors.New("seat not found")
	ErrLocationNotFound = errors.New("location not found")

	// State-invariant violations
	ErrSeatUnavailable      = errors.New("seat is not available")
	ErrSeatEliminated       = errors.New("seat is eliminated from inventory")
	ErrInsufficientCapacity = errors.New("insufficient seats available")
	ErrWrongSectorType      = errors.New("operation does not match sector type")
	ErrEmptyReservation     = errors.New("reservation request is empty")

	// Authorization
	ErrForbidden = errors.New("only administrators may perform this action")

	// Persistence
	ErrVersionConflict = errors.New("event document was modified concurrently")

	// Validation
	ErrInvalidSectorSpec = errors.New("invalid sector specification")
	ErrInvalidDateSpec   = errors.New("event date requires at least one sector")
)

// IsNotFound reports whether err maps to the NotFound taxonomy.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrDateNotFound) ||
		errors.Is(err, ErrSectorNotFound) ||
		errors.Is(err, ErrSeatNotFound) ||
		errors.Is(err, ErrLocationNotFound)
}

// IsBadRequest reports whether err maps to the BadRequest taxonomy:
// a state-invariant violation the caller can only resolve by re-fetching
// current availability.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrSeatUnavailable) ||
		errors.Is(err, ErrSeatEliminated) ||
		errors.Is(err, ErrInsufficientCapacity) ||
		errors.Is(err, ErrWrongSectorType) ||
		errors.Is(err, ErrEmptyReservation) ||
		errors.Is(err, ErrInvalidSectorSpec) ||
		errors.Is(err, ErrInvalidDateSpec)
}

// IsForbidden reports whether err is an authorization failure.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsConflict reports whether err is a retryable persistence conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}
