// This file implements the task accessors. The backing union is stored as
// two mutually exclusive nullable foreign keys and hydrated back into
// types.Backing; a row with neither set cannot exist under the schema
// CHECK, but hydration still reports it as corruption rather than
// trusting the constraint.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/loomworks/boardkit/pkg/types"
)

// InsertTask persists a new task.
func (t *Tx) InsertTask(task types.Task) error {
	if err := task.Backing.Validate(); err != nil {
		return err
	}

	var backlogItemID, sprintBacklogItemID any
	if task.Backing.IsSprint() {
		sprintBacklogItemID = task.Backing.ID()
	} else {
		backlogItemID = task.Backing.ID()
	}

	_, err := t.tx.Exec(
		"INSERT INTO tasks (task_id, backlog_item_id, sprint_backlog_item_id, assignee_id) VALUES (?, ?, ?, ?)",
		task.TaskID, backlogItemID, sprintBacklogItemID, nullIfEmpty(task.AssigneeID),
	)
	if err != nil {
		return fmt.Errorf("inserting task %s: %w", task.TaskID, err)
	}
	return nil
}

// GetTask retrieves a task by ID.
func (t *Tx) GetTask(taskID string) (types.Task, error) {
	var (
		task                types.Task
		backlogItemID       sql.NullString
		sprintBacklogItemID sql.NullString
		assigneeID          sql.NullString
	)
	err := t.tx.QueryRow(
		"SELECT task_id, backlog_item_id, sprint_backlog_item_id, assignee_id FROM tasks WHERE task_id = ?",
		taskID,
	).Scan(&task.TaskID, &backlogItemID, &sprintBacklogItemID, &assigneeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Task{}, fmt.Errorf("task %s: %w", taskID, types.ErrNotFound)
		}
		return types.Task{}, fmt.Errorf("getting task %s: %w", taskID, err)
	}

	switch {
	case backlogItemID.Valid:
		task.Backing = types.DirectBacking(backlogItemID.String)
	case sprintBacklogItemID.Valid:
		task.Backing = types.SprintBacking(sprintBacklogItemID.String)
	default:
		return types.Task{}, fmt.Errorf("task %s has no backlog item: %w", taskID, types.ErrCorrupt)
	}
	task.AssigneeID = assigneeID.String
	return task, nil
}

// DeleteTask removes a task row. Its placement, if any, is removed by the
// foreign key cascade.
func (t *Tx) DeleteTask(taskID string) error {
	res, err := t.tx.Exec("DELETE FROM tasks WHERE task_id = ?", taskID)
	if err != nil {
		return fmt.Errorf("deleting task %s: %w", taskID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", taskID, types.ErrNotFound)
	}
	return nil
}
