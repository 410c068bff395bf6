package types

// Task is the placement-eligible record a ColumnTask points at. It is
// always backed by exactly one backlog item, directly or via a sprint
// wrapper. Its assignee may diverge from the backing item's assignee:
// card updates touch the backlog item only.
type Task struct {
	TaskID     string
	Backing    Backing
	AssigneeID string // Optional.
}
