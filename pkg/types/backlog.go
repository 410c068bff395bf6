package types

import "time"

// BacklogItem is a space-scoped unit of work. Its sequence number is the
// product-backlog priority ordinal: assigned once at creation, strictly
// increasing per space, never reused and never renumbered by board
// operations. Board position lives on ColumnTask, not here.
type BacklogItem struct {
	BacklogItemID  string
	SpaceID        string
	SequenceNumber int
	Title          string
	Description    string // Optional.
	AssigneeID     string // Optional.
	CreatedByID    string
	CreatedAt      time.Time
}

// SprintBacklogItem binds one backlog item into exactly one sprint. A
// backlog item has at most one active wrapper at a time.
type SprintBacklogItem struct {
	SprintBacklogItemID string
	SprintID            string
	BacklogItemID       string
}
