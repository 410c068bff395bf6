package types

// Scope identifies the board a column belongs to: a whole project space
// (Kanban mode) or a single sprint within a space (Scrum mode). The zero
// Scope is invalid; construct values with SpaceScope or SprintScope. The
// two cases are mutually exclusive by construction and a column's scope is
// immutable after creation.
type Scope struct {
	sprint bool
	id     string
}

// SpaceScope returns the scope of a space-level (Kanban) board.
func SpaceScope(spaceID string) Scope {
	return Scope{id: spaceID}
}

// SprintScope returns the scope of a sprint-level (Scrum) board.
func SprintScope(sprintID string) Scope {
	return Scope{sprint: true, id: sprintID}
}

// IsSprint reports whether the scope names a sprint board.
func (s Scope) IsSprint() bool { return s.sprint }

// ID returns the space or sprint identifier, depending on the case.
func (s Scope) ID() string { return s.id }

// IsZero reports whether the scope is the invalid zero value.
func (s Scope) IsZero() bool { return s.id == "" }

// Validate returns ErrInvalidScope for the zero scope.
func (s Scope) Validate() error {
	if s.IsZero() {
		return ErrInvalidScope
	}
	return nil
}

// String renders the scope as "space:<id>" or "sprint:<id>".
func (s Scope) String() string {
	if s.IsZero() {
		return "scope:?"
	}
	if s.sprint {
		return "sprint:" + s.id
	}
	return "space:" + s.id
}
