// Default column seeding. A board that has never been touched gets a
// fixed five-column layout on first load, scoped to its space or sprint.
package board

import (
	"fmt"

	"github.com/loomworks/boardkit/internal/sqlite"
	"github.com/loomworks/boardkit/pkg/types"
)

// columnSpec describes one default column. A zero wipLimit means
// unlimited.
type columnSpec struct {
	name     string
	wipLimit int
}

// defaultColumns is the layout seeded into an empty scope, positions
// assigned by slice index.
var defaultColumns = []columnSpec{
	{name: "Backlog"},
	{name: "To Do"},
	{name: "In Progress", wipLimit: 5},
	{name: "In Review", wipLimit: 3},
	{name: "Done"},
}

// ensureColumns returns the scope's columns ordered by position, seeding
// the default set first when the scope has none. Idempotent: a non-empty
// scope is never reseeded. Two racing first-callers are arbitrated by the
// unique (scope, position) index: the loser's insert fails with
// types.ErrConflict, and the retried transaction finds the seeded columns.
func ensureColumns(tx *sqlite.Tx, scope types.Scope) ([]types.Column, error) {
	cols, err := tx.ColumnsInScope(scope)
	if err != nil {
		return nil, err
	}
	if len(cols) > 0 {
		return cols, nil
	}

	for i, spec := range defaultColumns {
		col := types.Column{
			ColumnID: sqlite.NewID(),
			Scope:    scope,
			Name:     spec.name,
			WIPLimit: spec.wipLimit,
			Position: i,
		}
		if err := tx.InsertColumn(col); err != nil {
			return nil, fmt.Errorf("seeding default columns for %s: %w", scope, err)
		}
	}

	return tx.ColumnsInScope(scope)
}

// resolveScope validates board identity and returns its scope. A sprint
// board requires the sprint to exist and belong to the space; a space
// board requires the space to exist. Mismatches report not-found.
func resolveScope(tx *sqlite.Tx, spaceID, sprintID string) (types.Scope, error) {
	if sprintID != "" {
		sprint, err := tx.GetSprint(sprintID)
		if err != nil {
			return types.Scope{}, err
		}
		if sprint.SpaceID != spaceID {
			return types.Scope{}, fmt.Errorf("sprint %s: %w", sprintID, types.ErrNotFound)
		}
		return types.SprintScope(sprintID), nil
	}
	if _, err := tx.GetSpace(spaceID); err != nil {
		return types.Scope{}, err
	}
	return types.SpaceScope(spaceID), nil
}
