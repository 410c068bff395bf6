package types

import "errors"

// Operation errors.
var (
	// ErrNotFound reports a missing entity, or one that exists outside the
	// caller's space or sprint. Scope mismatches are deliberately reported
	// as not-found so callers cannot probe for cross-tenant existence.
	ErrNotFound = errors.New("not found")

	// ErrConflict reports a write that collided with another writer on
	// shared column ordering or seeding. Retryable: re-read and retry the
	// whole operation, not just the failed write.
	ErrConflict = errors.New("write conflict")

	// ErrCorrupt reports stored data that violates a structural invariant,
	// such as a task with no backing backlog item. Not retryable and never
	// silently repaired.
	ErrCorrupt = errors.New("data corruption")
)

// Validation errors.
var (
	ErrTitleRequired   = errors.New("title must not be empty")
	ErrNameRequired    = errors.New("name must not be empty")
	ErrInvalidWIPLimit = errors.New("wip limit must be positive")
	ErrInvalidPosition = errors.New("position must not be negative")
	ErrInvalidScope    = errors.New("scope must name a space or a sprint")
	ErrInvalidBacking  = errors.New("backing must name a backlog item")
)
