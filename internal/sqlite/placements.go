// This file implements the placement (column_tasks) accessors. Placement
// is the one genuinely shared mutable resource in the engine; every write
// here happens inside a transaction driven by the board engine.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/loomworks/boardkit/pkg/types"
)

// InsertPlacement places a task in a column at a position. The primary key
// on task_id rejects a second placement for the same task.
func (t *Tx) InsertPlacement(ct types.ColumnTask) error {
	_, err := t.tx.Exec(
		"INSERT INTO column_tasks (task_id, column_id, position) VALUES (?, ?, ?)",
		ct.TaskID, ct.ColumnID, ct.Position,
	)
	if err != nil {
		return fmt.Errorf("placing task %s in column %s: %w", ct.TaskID, ct.ColumnID, err)
	}
	return nil
}

// GetPlacement retrieves a task's placement, or types.ErrNotFound when the
// task is not on any board.
func (t *Tx) GetPlacement(taskID string) (types.ColumnTask, error) {
	var ct types.ColumnTask
	err := t.tx.QueryRow(
		"SELECT task_id, column_id, position FROM column_tasks WHERE task_id = ?", taskID,
	).Scan(&ct.TaskID, &ct.ColumnID, &ct.Position)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.ColumnTask{}, fmt.Errorf("placement for task %s: %w", taskID, types.ErrNotFound)
		}
		return types.ColumnTask{}, fmt.Errorf("getting placement for task %s: %w", taskID, err)
	}
	return ct, nil
}

// PlacementsInColumn returns a column's placements ordered by position
// ascending.
func (t *Tx) PlacementsInColumn(columnID string) ([]types.ColumnTask, error) {
	rows, err := t.tx.Query(
		"SELECT task_id, column_id, position FROM column_tasks WHERE column_id = ? ORDER BY position ASC",
		columnID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying placements for column %s: %w", columnID, err)
	}
	defer rows.Close()

	var placements []types.ColumnTask
	for rows.Next() {
		var ct types.ColumnTask
		if err := rows.Scan(&ct.TaskID, &ct.ColumnID, &ct.Position); err != nil {
			return nil, err
		}
		placements = append(placements, ct)
	}
	return placements, rows.Err()
}

// DeletePlacement removes a task from its column, wherever it is. Missing
// placements are not an error here; the engine checks existence first
// where the contract requires it.
func (t *Tx) DeletePlacement(taskID string) error {
	if _, err := t.tx.Exec("DELETE FROM column_tasks WHERE task_id = ?", taskID); err != nil {
		return fmt.Errorf("removing placement for task %s: %w", taskID, err)
	}
	return nil
}

// MaxPositionInColumn returns the highest position in a column, or -1 when
// the column is empty.
func (t *Tx) MaxPositionInColumn(columnID string) (int, error) {
	var max int
	err := t.tx.QueryRow(
		"SELECT COALESCE(MAX(position), -1) FROM column_tasks WHERE column_id = ?", columnID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max position for column %s: %w", columnID, err)
	}
	return max, nil
}

// ReindexColumn rewrites a column's placements as the given task order,
// positions dense from 0. The delete-and-reinsert happens inside the
// surrounding transaction, so readers never observe a partial reindex.
// Any task in the list still placed in another column must be unplaced by
// the caller first.
func (t *Tx) ReindexColumn(columnID string, orderedTaskIDs []string) error {
	if _, err := t.tx.Exec("DELETE FROM column_tasks WHERE column_id = ?", columnID); err != nil {
		return fmt.Errorf("clearing column %s for reindex: %w", columnID, err)
	}
	for i, taskID := range orderedTaskIDs {
		_, err := t.tx.Exec(
			"INSERT INTO column_tasks (task_id, column_id, position) VALUES (?, ?, ?)",
			taskID, columnID, i,
		)
		if err != nil {
			return fmt.Errorf("reindexing task %s in column %s: %w", taskID, columnID, err)
		}
	}
	return nil
}
