// Column lifecycle: add, rename, remove. Removal cascades the full card
// teardown for every card in the column before the column row itself
// goes.
package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/loomworks/boardkit/internal/sqlite"
	"github.com/loomworks/boardkit/pkg/types"
)

// AddColumn appends a column at the end of a space board (sprintID empty)
// or a sprint board. An untouched board is seeded with the defaults
// first, so the new column lands after them.
func (e *Engine) AddColumn(ctx context.Context, spaceID, name string, wipLimit int, sprintID string) (*types.Column, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, types.ErrNameRequired
	}
	if wipLimit < 0 {
		return nil, types.ErrInvalidWIPLimit
	}

	var created types.Column
	err := e.update(ctx, "addColumn", func(tx *sqlite.Tx) error {
		scope, err := resolveScope(tx, spaceID, sprintID)
		if err != nil {
			return err
		}
		if _, err := ensureColumns(tx, scope); err != nil {
			return err
		}
		maxPos, err := tx.MaxColumnPosition(scope)
		if err != nil {
			return err
		}

		created = types.Column{
			ColumnID: sqlite.NewID(),
			Scope:    scope,
			Name:     name,
			WIPLimit: wipLimit,
			Position: maxPos + 1,
		}
		return tx.InsertColumn(created)
	})
	if err != nil {
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"op": "addColumn", "space": spaceID, "column": created.ColumnID, "name": name,
	}).Info("column added")
	return &created, nil
}

// RenameColumn renames a column after a scoped existence check. Cards and
// ordering are untouched.
func (e *Engine) RenameColumn(ctx context.Context, spaceID, columnID, name, sprintID string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.ErrNameRequired
	}

	err := e.update(ctx, "renameColumn", func(tx *sqlite.Tx) error {
		if _, err := scopedColumn(tx, columnID, spaceID, sprintID); err != nil {
			return err
		}
		return tx.RenameColumn(columnID, name)
	})
	if err != nil {
		return err
	}

	e.log.WithFields(logrus.Fields{
		"op": "renameColumn", "space": spaceID, "column": columnID, "name": name,
	}).Info("column renamed")
	return nil
}

// RemoveColumn deletes a column and every card in it. Each card gets the
// full teardown cascade before the column row is deleted; the whole
// removal commits or rolls back as one transaction. Not invertible.
func (e *Engine) RemoveColumn(ctx context.Context, spaceID, columnID, sprintID string) error {
	var removed int
	err := e.update(ctx, "removeColumn", func(tx *sqlite.Tx) error {
		if _, err := scopedColumn(tx, columnID, spaceID, sprintID); err != nil {
			return err
		}

		placements, err := tx.PlacementsInColumn(columnID)
		if err != nil {
			return err
		}
		for _, pl := range placements {
			if _, _, err := deleteCardRecords(tx, spaceID, pl.TaskID); err != nil {
				return err
			}
		}
		removed = len(placements)

		return tx.DeleteColumn(columnID)
	})
	if err != nil {
		return err
	}

	e.log.WithFields(logrus.Fields{
		"op": "removeColumn", "space": spaceID, "column": columnID, "cards": removed,
	}).Info("column removed")
	return nil
}

// scopedColumn fetches a column and verifies it belongs to the board the
// caller named: the sprint board when sprintID is set, the space board
// otherwise. A column that exists under another scope reports not-found.
func scopedColumn(tx *sqlite.Tx, columnID, spaceID, sprintID string) (types.Column, error) {
	col, err := tx.GetColumn(columnID)
	if err != nil {
		return types.Column{}, err
	}

	want := types.SpaceScope(spaceID)
	if sprintID != "" {
		want = types.SprintScope(sprintID)
	}
	if col.Scope != want {
		return types.Column{}, fmt.Errorf("column %s: %w", columnID, types.ErrNotFound)
	}
	return col, nil
}
