package types

// Backing identifies the content record behind a task: a plain backlog
// item (Kanban card) or a sprint backlog item wrapping one (Scrum card).
// The zero Backing is invalid; construct values with DirectBacking or
// SprintBacking. A task's backing is immutable after creation.
type Backing struct {
	sprint bool
	id     string
}

// DirectBacking returns a backing that points straight at a backlog item.
func DirectBacking(backlogItemID string) Backing {
	return Backing{id: backlogItemID}
}

// SprintBacking returns a backing that points at a sprint backlog item.
func SprintBacking(sprintBacklogItemID string) Backing {
	return Backing{sprint: true, id: sprintBacklogItemID}
}

// IsSprint reports whether the backing goes through a sprint wrapper.
func (b Backing) IsSprint() bool { return b.sprint }

// ID returns the backlog item or sprint backlog item identifier.
func (b Backing) ID() string { return b.id }

// IsZero reports whether the backing is the invalid zero value. A stored
// task with a zero backing is corrupt, not merely empty.
func (b Backing) IsZero() bool { return b.id == "" }

// Validate returns ErrInvalidBacking for the zero backing.
func (b Backing) Validate() error {
	if b.IsZero() {
		return ErrInvalidBacking
	}
	return nil
}
