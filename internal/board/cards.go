// Card lifecycle: create, update, move and delete. A card is one Task plus
// its backing record(s) plus its placement; every operation here writes
// all of them, or none.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/loomworks/boardkit/internal/sqlite"
	"github.com/loomworks/boardkit/pkg/types"
)

// CreateCard creates a card at the bottom of a column. The column must
// belong to the space, directly or via its sprint. Sprint columns get the
// full four-record cascade (backlog item, sprint wrapper, task,
// placement); space columns skip the wrapper.
func (e *Engine) CreateCard(ctx context.Context, spaceID, columnID string, draft types.CardDraft, createdByID string) (*types.BoardCard, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, types.ErrTitleRequired
	}

	var card *types.BoardCard
	err := e.update(ctx, "createCard", func(tx *sqlite.Tx) error {
		col, err := tx.GetColumn(columnID)
		if err != nil {
			return err
		}
		colSpaceID, colSprintID, err := columnSpace(tx, col)
		if err != nil {
			return err
		}
		if colSpaceID != spaceID {
			return fmt.Errorf("column %s: %w", columnID, types.ErrNotFound)
		}

		maxPos, err := tx.MaxPositionInColumn(columnID)
		if err != nil {
			return err
		}
		position := maxPos + 1

		seq, err := tx.NextSequenceNumber(spaceID)
		if err != nil {
			return err
		}

		item := types.BacklogItem{
			BacklogItemID:  sqlite.NewID(),
			SpaceID:        spaceID,
			SequenceNumber: seq,
			Title:          title,
			Description:    draft.Description,
			AssigneeID:     draft.AssigneeID,
			CreatedByID:    createdByID,
			CreatedAt:      time.Now().UTC(),
		}
		if err := tx.InsertBacklogItem(item); err != nil {
			return err
		}

		task := types.Task{TaskID: sqlite.NewID(), AssigneeID: draft.AssigneeID}
		if colSprintID != "" {
			sbi := types.SprintBacklogItem{
				SprintBacklogItemID: sqlite.NewID(),
				SprintID:            colSprintID,
				BacklogItemID:       item.BacklogItemID,
			}
			if err := tx.InsertSprintBacklogItem(sbi); err != nil {
				return err
			}
			task.Backing = types.SprintBacking(sbi.SprintBacklogItemID)
		} else {
			task.Backing = types.DirectBacking(item.BacklogItemID)
		}
		if err := tx.InsertTask(task); err != nil {
			return err
		}
		if err := tx.InsertPlacement(types.ColumnTask{ColumnID: columnID, TaskID: task.TaskID, Position: position}); err != nil {
			return err
		}

		snap, err := cardSnapshot(tx, task.TaskID, position)
		if err != nil {
			return err
		}
		card = &snap
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"op": "createCard", "space": spaceID, "column": columnID, "task": card.ID, "seq": card.SequenceNumber,
	}).Info("card created")
	return card, nil
}

// UpdateCard applies a partial update to a card's backing backlog item.
// Position and column membership are untouched; use MoveCard for those.
// The backing item must belong to the space.
func (e *Engine) UpdateCard(ctx context.Context, spaceID, taskID string, patch types.CardPatch) (*types.BoardCard, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, types.ErrTitleRequired
	}

	var card *types.BoardCard
	err := e.update(ctx, "updateCard", func(tx *sqlite.Tx) error {
		task, err := tx.GetTask(taskID)
		if err != nil {
			return err
		}
		item, err := backingItem(tx, task)
		if err != nil {
			return err
		}
		if item.SpaceID != spaceID {
			return fmt.Errorf("task %s: %w", taskID, types.ErrNotFound)
		}

		if patch.Title != nil {
			item.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.AssigneeID != nil {
			item.AssigneeID = *patch.AssigneeID
		}
		if err := tx.UpdateBacklogItem(item); err != nil {
			return err
		}

		// The refreshed view carries the card's current board position;
		// an unplaced task reads as position 0.
		position := 0
		if pl, err := tx.GetPlacement(taskID); err == nil {
			position = pl.Position
		} else if !errors.Is(err, types.ErrNotFound) {
			return err
		}

		snap, err := cardSnapshot(tx, taskID, position)
		if err != nil {
			return err
		}
		card = &snap
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.WithFields(logrus.Fields{"op": "updateCard", "space": spaceID, "task": taskID}).Info("card updated")
	return card, nil
}

// MoveCard relocates a card to a position in a column, which may be the
// column it is already in. The destination column is fully reindexed with
// the card spliced in at min(position, card count), and the source column
// is reindexed when different, so both end dense. Only the placement
// record changes; the task and its backing are untouched.
func (e *Engine) MoveCard(ctx context.Context, spaceID, taskID, columnID string, position int) error {
	if position < 0 {
		return types.ErrInvalidPosition
	}

	err := e.update(ctx, "moveCard", func(tx *sqlite.Tx) error {
		if _, err := tx.GetTask(taskID); err != nil {
			return err
		}
		col, err := tx.GetColumn(columnID)
		if err != nil {
			return err
		}
		colSpaceID, _, err := columnSpace(tx, col)
		if err != nil {
			return err
		}
		if colSpaceID != spaceID {
			return fmt.Errorf("column %s: %w", columnID, types.ErrNotFound)
		}

		existing, err := tx.GetPlacement(taskID)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("card %s not found on board: %w", taskID, types.ErrNotFound)
			}
			return err
		}
		sourceColumnID := existing.ColumnID

		// Unplace first so the destination reindex can insert the task
		// without tripping placement uniqueness.
		if err := tx.DeletePlacement(taskID); err != nil {
			return err
		}

		destPlacements, err := tx.PlacementsInColumn(columnID)
		if err != nil {
			return err
		}
		ordered := make([]string, 0, len(destPlacements)+1)
		for _, pl := range destPlacements {
			ordered = append(ordered, pl.TaskID)
		}
		at := min(position, len(ordered))
		ordered = append(ordered[:at], append([]string{taskID}, ordered[at:]...)...)
		if err := tx.ReindexColumn(columnID, ordered); err != nil {
			return err
		}

		if sourceColumnID != columnID {
			remaining, err := tx.PlacementsInColumn(sourceColumnID)
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(remaining))
			for _, pl := range remaining {
				ids = append(ids, pl.TaskID)
			}
			if err := tx.ReindexColumn(sourceColumnID, ids); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.log.WithFields(logrus.Fields{
		"op": "moveCard", "space": spaceID, "task": taskID, "column": columnID, "position": position,
	}).Info("card moved")
	return nil
}

// DeleteCard tears down a card: the task (its placement cascades), and its
// backing record. For a sprint card only the sprint wrapper is deleted;
// the wrapped space-level backlog item outlives its board placement. The
// column the card occupied is reindexed afterwards.
func (e *Engine) DeleteCard(ctx context.Context, spaceID, taskID string) error {
	err := e.update(ctx, "deleteCard", func(tx *sqlite.Tx) error {
		columnID, placed, err := deleteCardRecords(tx, spaceID, taskID)
		if err != nil {
			return err
		}
		if placed {
			return reindexRemaining(tx, columnID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	e.log.WithFields(logrus.Fields{"op": "deleteCard", "space": spaceID, "task": taskID}).Info("card deleted")
	return nil
}

// deleteCardRecords removes a card's task and backing record after
// verifying space ownership. It reports the column the card occupied, if
// any, and leaves reindexing to the caller: column removal deletes the
// whole column anyway.
func deleteCardRecords(tx *sqlite.Tx, spaceID, taskID string) (columnID string, placed bool, err error) {
	task, err := tx.GetTask(taskID)
	if err != nil {
		return "", false, err
	}

	if pl, err := tx.GetPlacement(taskID); err == nil {
		columnID, placed = pl.ColumnID, true
	} else if !errors.Is(err, types.ErrNotFound) {
		return "", false, err
	}

	if task.Backing.IsSprint() {
		sbi, err := tx.GetSprintBacklogItem(task.Backing.ID())
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return "", false, fmt.Errorf("task %s backing is dangling: %w", taskID, types.ErrCorrupt)
			}
			return "", false, err
		}
		sprint, err := tx.GetSprint(sbi.SprintID)
		if err != nil {
			return "", false, err
		}
		if sprint.SpaceID != spaceID {
			return "", false, fmt.Errorf("task %s: %w", taskID, types.ErrNotFound)
		}
		if err := tx.DeleteTask(taskID); err != nil {
			return "", false, err
		}
		if err := tx.DeleteSprintBacklogItem(sbi.SprintBacklogItemID); err != nil {
			return "", false, err
		}
		return columnID, placed, nil
	}

	item, err := tx.GetBacklogItem(task.Backing.ID())
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return "", false, fmt.Errorf("task %s backing is dangling: %w", taskID, types.ErrCorrupt)
		}
		return "", false, err
	}
	if item.SpaceID != spaceID {
		return "", false, fmt.Errorf("task %s: %w", taskID, types.ErrNotFound)
	}
	if err := tx.DeleteTask(taskID); err != nil {
		return "", false, err
	}
	if err := tx.DeleteBacklogItem(item.BacklogItemID); err != nil {
		return "", false, err
	}
	return columnID, placed, nil
}

// reindexRemaining closes the position gap a removed card left behind.
func reindexRemaining(tx *sqlite.Tx, columnID string) error {
	remaining, err := tx.PlacementsInColumn(columnID)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(remaining))
	for _, pl := range remaining {
		ids = append(ids, pl.TaskID)
	}
	return tx.ReindexColumn(columnID, ids)
}

// columnSpace resolves the space a column belongs to: directly for a
// space column, via the owning sprint for a sprint column. It also
// reports the sprint ID for sprint columns.
func columnSpace(tx *sqlite.Tx, col types.Column) (spaceID, sprintID string, err error) {
	if !col.Scope.IsSprint() {
		return col.Scope.ID(), "", nil
	}
	sprint, err := tx.GetSprint(col.Scope.ID())
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return "", "", fmt.Errorf("column %s scope is dangling: %w", col.ColumnID, types.ErrCorrupt)
		}
		return "", "", err
	}
	return sprint.SpaceID, sprint.SprintID, nil
}
