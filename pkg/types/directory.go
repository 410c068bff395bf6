package types

import "time"

// Space is a project workspace owning a backlog and a Kanban board.
// Space lifecycle beyond creation is managed outside the board engine;
// the record here carries what the engine needs: identity and the
// per-space sequence counter backing backlog item numbering.
type Space struct {
	SpaceID   string
	Name      string
	CreatedAt time.Time
}

// Sprint is a time-boxed iteration within a space, owning a Scrum board.
type Sprint struct {
	SprintID  string
	SpaceID   string
	Name      string
	CreatedAt time.Time
}

// User is a directory entry resolved at board assembly time for assignee
// and creator display names.
type User struct {
	UserID    string
	Name      string
	CreatedAt time.Time
}
