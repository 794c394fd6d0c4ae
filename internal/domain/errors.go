package domain

import "errors"

// Sentinel errors for the admin domain. Mutation commands wrap these with
// fmt.Errorf("...: %w", ...) and HTTP delivery maps them to status codes
// with errors.Is.
var (
	// ErrNotFound indicates an unknown entity id was supplied to a mutation.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition indicates a status change that is not permitted
	// from the entity's current state.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrPreconditionFailed indicates the operation's required prior state
	// is absent (e.g. seating a reservation without a table assignment).
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrInvalidArgument indicates a malformed input value, such as a
	// non-positive restock quantity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict indicates a stale write: the caller's expected version
	// no longer matches the stored entity version.
	ErrConflict = errors.New("version conflict")
)
