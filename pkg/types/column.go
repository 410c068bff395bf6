package types

// Column is a named, positioned lane on a board, optionally WIP-limited.
type Column struct {
	ColumnID string // UUID v7, generated on creation.
	Scope    Scope  // Owning board; immutable after creation.
	Name     string // Display name (required, non-empty).
	WIPLimit int    // Advisory work-in-progress limit; 0 means unlimited.
	Position int    // Ordinal within the scope, unique, dense from 0.
}

// ColumnTask is the placement record binding a task into a column at a
// position. A task has at most one placement at any time, and positions
// within one column are dense 0..n-1 after every completed mutation.
type ColumnTask struct {
	ColumnID string
	TaskID   string
	Position int
}
