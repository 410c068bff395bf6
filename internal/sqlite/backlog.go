// This file implements the backlog item and sprint backlog item accessors,
// including per-space sequence number allocation.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/loomworks/boardkit/pkg/types"
)

const backlogCols = "backlog_item_id, space_id, sequence_number, title, description, assignee_id, created_by_id, created_at"

// NextSequenceNumber allocates the next backlog sequence number for a
// space by bumping the space's counter inside the current transaction.
// Allocated numbers are strictly increasing and never reused, even after
// the highest-numbered item is deleted (MAX+1 would reuse it).
func (t *Tx) NextSequenceNumber(spaceID string) (int, error) {
	res, err := t.tx.Exec("UPDATE spaces SET seq_counter = seq_counter + 1 WHERE space_id = ?", spaceID)
	if err != nil {
		return 0, fmt.Errorf("bumping sequence counter for space %s: %w", spaceID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("space %s: %w", spaceID, types.ErrNotFound)
	}

	var seq int
	if err := t.tx.QueryRow("SELECT seq_counter FROM spaces WHERE space_id = ?", spaceID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("reading sequence counter for space %s: %w", spaceID, err)
	}
	return seq, nil
}

// InsertBacklogItem persists a new backlog item with an already-allocated
// sequence number.
func (t *Tx) InsertBacklogItem(item types.BacklogItem) error {
	_, err := t.tx.Exec(
		"INSERT INTO backlog_items ("+backlogCols+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		item.BacklogItemID, item.SpaceID, item.SequenceNumber, item.Title,
		nullIfEmpty(item.Description), nullIfEmpty(item.AssigneeID),
		item.CreatedByID, formatTime(item.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting backlog item %q: %w", item.Title, err)
	}
	return nil
}

// GetBacklogItem retrieves a backlog item by ID.
func (t *Tx) GetBacklogItem(backlogItemID string) (types.BacklogItem, error) {
	row := t.tx.QueryRow("SELECT "+backlogCols+" FROM backlog_items WHERE backlog_item_id = ?", backlogItemID)
	item, err := scanBacklogItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.BacklogItem{}, fmt.Errorf("backlog item %s: %w", backlogItemID, types.ErrNotFound)
		}
		return types.BacklogItem{}, fmt.Errorf("getting backlog item %s: %w", backlogItemID, err)
	}
	return item, nil
}

// UpdateBacklogItem writes the mutable content fields (title, description,
// assignee). Sequence number, space and creation metadata never change.
func (t *Tx) UpdateBacklogItem(item types.BacklogItem) error {
	res, err := t.tx.Exec(
		"UPDATE backlog_items SET title = ?, description = ?, assignee_id = ? WHERE backlog_item_id = ?",
		item.Title, nullIfEmpty(item.Description), nullIfEmpty(item.AssigneeID), item.BacklogItemID,
	)
	if err != nil {
		return fmt.Errorf("updating backlog item %s: %w", item.BacklogItemID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("backlog item %s: %w", item.BacklogItemID, types.ErrNotFound)
	}
	return nil
}

// DeleteBacklogItem removes a backlog item row.
func (t *Tx) DeleteBacklogItem(backlogItemID string) error {
	res, err := t.tx.Exec("DELETE FROM backlog_items WHERE backlog_item_id = ?", backlogItemID)
	if err != nil {
		return fmt.Errorf("deleting backlog item %s: %w", backlogItemID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("backlog item %s: %w", backlogItemID, types.ErrNotFound)
	}
	return nil
}

// MaxSequenceInSpace returns the highest sequence number currently stored
// for a space, or 0 when the space has no backlog items. This is the
// observed maximum, distinct from the allocation counter.
func (t *Tx) MaxSequenceInSpace(spaceID string) (int, error) {
	var max int
	err := t.tx.QueryRow(
		"SELECT COALESCE(MAX(sequence_number), 0) FROM backlog_items WHERE space_id = ?", spaceID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max sequence for space %s: %w", spaceID, err)
	}
	return max, nil
}

// MaxSequenceInSprint returns the highest sequence number among backlog
// items pulled into a sprint, or 0 when the sprint has none.
func (t *Tx) MaxSequenceInSprint(sprintID string) (int, error) {
	var max int
	err := t.tx.QueryRow(
		`SELECT COALESCE(MAX(bi.sequence_number), 0)
		 FROM sprint_backlog_items sbi
		 JOIN backlog_items bi ON bi.backlog_item_id = sbi.backlog_item_id
		 WHERE sbi.sprint_id = ?`, sprintID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max sequence for sprint %s: %w", sprintID, err)
	}
	return max, nil
}

// InsertSprintBacklogItem persists a sprint wrapper for a backlog item.
// The unique constraint on backlog_item_id enforces at most one active
// wrapper per item.
func (t *Tx) InsertSprintBacklogItem(sbi types.SprintBacklogItem) error {
	_, err := t.tx.Exec(
		"INSERT INTO sprint_backlog_items (sprint_backlog_item_id, sprint_id, backlog_item_id) VALUES (?, ?, ?)",
		sbi.SprintBacklogItemID, sbi.SprintID, sbi.BacklogItemID,
	)
	if err != nil {
		return fmt.Errorf("inserting sprint backlog item: %w", err)
	}
	return nil
}

// GetSprintBacklogItem retrieves a sprint wrapper by ID.
func (t *Tx) GetSprintBacklogItem(sprintBacklogItemID string) (types.SprintBacklogItem, error) {
	var sbi types.SprintBacklogItem
	err := t.tx.QueryRow(
		"SELECT sprint_backlog_item_id, sprint_id, backlog_item_id FROM sprint_backlog_items WHERE sprint_backlog_item_id = ?",
		sprintBacklogItemID,
	).Scan(&sbi.SprintBacklogItemID, &sbi.SprintID, &sbi.BacklogItemID)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.SprintBacklogItem{}, fmt.Errorf("sprint backlog item %s: %w", sprintBacklogItemID, types.ErrNotFound)
		}
		return types.SprintBacklogItem{}, fmt.Errorf("getting sprint backlog item %s: %w", sprintBacklogItemID, err)
	}
	return sbi, nil
}

// DeleteSprintBacklogItem removes a sprint wrapper row. The wrapped
// backlog item is left in place.
func (t *Tx) DeleteSprintBacklogItem(sprintBacklogItemID string) error {
	res, err := t.tx.Exec(
		"DELETE FROM sprint_backlog_items WHERE sprint_backlog_item_id = ?", sprintBacklogItemID,
	)
	if err != nil {
		return fmt.Errorf("deleting sprint backlog item %s: %w", sprintBacklogItemID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("sprint backlog item %s: %w", sprintBacklogItemID, types.ErrNotFound)
	}
	return nil
}

func scanBacklogItem(s scanner) (types.BacklogItem, error) {
	var (
		item        types.BacklogItem
		description sql.NullString
		assigneeID  sql.NullString
		createdAt   string
	)
	err := s.Scan(
		&item.BacklogItemID, &item.SpaceID, &item.SequenceNumber, &item.Title,
		&description, &assigneeID, &item.CreatedByID, &createdAt,
	)
	if err != nil {
		return types.BacklogItem{}, err
	}
	item.Description = description.String
	item.AssigneeID = assigneeID.String
	item.CreatedAt = parseTime(createdAt)
	return item, nil
}
