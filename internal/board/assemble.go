// Board assembly: one ordered view of a space or sprint board, cards
// denormalized from their task, backing item and assignee directory
// entries.
package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/loomworks/boardkit/internal/sqlite"
	"github.com/loomworks/boardkit/pkg/types"
)

// Board assembles the full board for a space (sprintID empty) or a sprint
// within that space. An untouched board is seeded with the default columns
// first, so assembly runs as a write transaction.
//
// NextSequence is one past the highest sequence number observed in the
// board's scope (space-wide for a space board, sprint-filtered for a
// sprint board), defaulting to 1. It is informational: no reservation is
// made.
func (e *Engine) Board(ctx context.Context, spaceID, sprintID string) (*types.Board, error) {
	var view *types.Board
	err := e.update(ctx, "board", func(tx *sqlite.Tx) error {
		scope, err := resolveScope(tx, spaceID, sprintID)
		if err != nil {
			return err
		}

		cols, err := ensureColumns(tx, scope)
		if err != nil {
			return err
		}

		board := &types.Board{Columns: make([]types.BoardColumn, 0, len(cols))}
		for _, col := range cols {
			bc := types.BoardColumn{
				ID:       col.ColumnID,
				Name:     col.Name,
				WIPLimit: col.WIPLimit,
				Position: col.Position,
				Cards:    []types.BoardCard{},
			}
			placements, err := tx.PlacementsInColumn(col.ColumnID)
			if err != nil {
				return err
			}
			for _, pl := range placements {
				card, err := cardSnapshot(tx, pl.TaskID, pl.Position)
				if err != nil {
					return err
				}
				bc.Cards = append(bc.Cards, card)
			}
			board.Columns = append(board.Columns, bc)
		}

		var maxSeq int
		if scope.IsSprint() {
			maxSeq, err = tx.MaxSequenceInSprint(scope.ID())
		} else {
			maxSeq, err = tx.MaxSequenceInSpace(spaceID)
		}
		if err != nil {
			return err
		}
		board.NextSequence = maxSeq + 1

		view = board
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// cardSnapshot builds the denormalized card view for a placed task. The
// assignee ID prefers the backing item's assignee over the task's; the
// display name prefers the task's assignee over the item's, mirroring the
// fact that the two may diverge after updates.
func cardSnapshot(tx *sqlite.Tx, taskID string, position int) (types.BoardCard, error) {
	task, err := tx.GetTask(taskID)
	if err != nil {
		return types.BoardCard{}, err
	}
	item, err := backingItem(tx, task)
	if err != nil {
		return types.BoardCard{}, err
	}

	card := types.BoardCard{
		ID:             task.TaskID,
		Title:          item.Title,
		Description:    item.Description,
		SequenceNumber: item.SequenceNumber,
		Position:       position,
		CreatedAt:      item.CreatedAt,
	}

	card.AssigneeID = item.AssigneeID
	if card.AssigneeID == "" {
		card.AssigneeID = task.AssigneeID
	}
	card.AssigneeName = userName(tx, task.AssigneeID)
	if card.AssigneeName == "" {
		card.AssigneeName = userName(tx, item.AssigneeID)
	}
	return card, nil
}

// backingItem resolves a task's backing to its backlog item, directly or
// through the sprint wrapper. A dangling backing is corruption, not a
// user-visible not-found.
func backingItem(tx *sqlite.Tx, task types.Task) (types.BacklogItem, error) {
	if task.Backing.IsZero() {
		return types.BacklogItem{}, fmt.Errorf("task %s has no backlog item: %w", task.TaskID, types.ErrCorrupt)
	}

	backlogItemID := task.Backing.ID()
	if task.Backing.IsSprint() {
		sbi, err := tx.GetSprintBacklogItem(task.Backing.ID())
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return types.BacklogItem{}, fmt.Errorf("task %s backing is dangling: %w", task.TaskID, types.ErrCorrupt)
			}
			return types.BacklogItem{}, err
		}
		backlogItemID = sbi.BacklogItemID
	}

	item, err := tx.GetBacklogItem(backlogItemID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.BacklogItem{}, fmt.Errorf("task %s backing is dangling: %w", task.TaskID, types.ErrCorrupt)
		}
		return types.BacklogItem{}, err
	}
	return item, nil
}

// userName resolves a directory display name. Unknown or empty user IDs
// degrade to an empty name; assembly never fails on a missing directory
// entry.
func userName(tx *sqlite.Tx, userID string) string {
	if userID == "" {
		return ""
	}
	u, err := tx.GetUser(userID)
	if err != nil {
		return ""
	}
	return u.Name
}
