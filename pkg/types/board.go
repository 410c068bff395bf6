package types

import "time"

// BoardCard is the denormalized card snapshot returned by board assembly.
// ID is the task ID; title, description, assignee and sequence number come
// from the backing backlog item; position comes from the placement.
type BoardCard struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	AssigneeID     string    `json:"assigneeId,omitempty"`
	AssigneeName   string    `json:"assigneeName,omitempty"`
	SequenceNumber int       `json:"sequenceNumber"`
	Position       int       `json:"position"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BoardColumn is one lane of an assembled board, cards in ascending
// position order.
type BoardColumn struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	WIPLimit int         `json:"wipLimit,omitempty"`
	Position int         `json:"position"`
	Cards    []BoardCard `json:"cards"`
}

// Board is the full assembled view of one space or sprint board.
// NextSequence is one past the highest sequence number observed in the
// board's scope, for UI pre-allocation only: it is not a reservation and
// no lock is held on it.
type Board struct {
	Columns      []BoardColumn `json:"columns"`
	NextSequence int           `json:"nextSequence"`
}

// CardDraft carries the caller-supplied fields for card creation.
type CardDraft struct {
	Title       string
	Description string
	AssigneeID  string
}

// CardPatch carries a partial card update. Nil fields are left untouched;
// a pointer to the empty string clears the field.
type CardPatch struct {
	Title       *string
	Description *string
	AssigneeID  *string
}
