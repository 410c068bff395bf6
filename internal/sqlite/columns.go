// This file implements the column accessors: scope-ordered reads, inserts,
// renames and deletes. A column's scope is stored as two nullable foreign
// keys and hydrated back into the types.Scope union.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/loomworks/boardkit/pkg/types"
)

const columnCols = "column_id, space_id, sprint_id, name, wip_limit, position"

// ColumnsInScope returns the columns of one board ordered by position
// ascending. Space boards match space_id with sprint_id null; sprint
// boards the reverse.
func (t *Tx) ColumnsInScope(scope types.Scope) ([]types.Column, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	query := "SELECT " + columnCols + " FROM columns WHERE space_id = ? AND sprint_id IS NULL ORDER BY position ASC"
	if scope.IsSprint() {
		query = "SELECT " + columnCols + " FROM columns WHERE sprint_id = ? AND space_id IS NULL ORDER BY position ASC"
	}

	rows, err := t.tx.Query(query, scope.ID())
	if err != nil {
		return nil, fmt.Errorf("querying columns for %s: %w", scope, err)
	}
	defer rows.Close()

	var cols []types.Column
	for rows.Next() {
		col, err := scanColumn(rows)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

// GetColumn retrieves a column by ID. Returns types.ErrNotFound if absent.
func (t *Tx) GetColumn(columnID string) (types.Column, error) {
	row := t.tx.QueryRow("SELECT "+columnCols+" FROM columns WHERE column_id = ?", columnID)
	col, err := scanColumn(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Column{}, fmt.Errorf("column %s: %w", columnID, types.ErrNotFound)
		}
		return types.Column{}, fmt.Errorf("getting column %s: %w", columnID, err)
	}
	return col, nil
}

// InsertColumn persists a new column. The caller supplies the ID, scope,
// name, limit and position; position collisions within the scope surface
// as types.ErrConflict via the partial unique indexes.
func (t *Tx) InsertColumn(col types.Column) error {
	if err := col.Scope.Validate(); err != nil {
		return err
	}

	var spaceID, sprintID any
	if col.Scope.IsSprint() {
		sprintID = col.Scope.ID()
	} else {
		spaceID = col.Scope.ID()
	}

	_, err := t.tx.Exec(
		"INSERT INTO columns (column_id, space_id, sprint_id, name, wip_limit, position) VALUES (?, ?, ?, ?, ?, ?)",
		col.ColumnID, spaceID, sprintID, col.Name, nullIfZero(col.WIPLimit), col.Position,
	)
	if err != nil {
		return fmt.Errorf("inserting column %q: %w", col.Name, err)
	}
	return nil
}

// RenameColumn updates a column's name only. Cards and ordering are
// untouched.
func (t *Tx) RenameColumn(columnID, name string) error {
	res, err := t.tx.Exec("UPDATE columns SET name = ? WHERE column_id = ?", name, columnID)
	if err != nil {
		return fmt.Errorf("renaming column %s: %w", columnID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("column %s: %w", columnID, types.ErrNotFound)
	}
	return nil
}

// DeleteColumn removes the column row. The caller is responsible for
// cascading card deletion first.
func (t *Tx) DeleteColumn(columnID string) error {
	res, err := t.tx.Exec("DELETE FROM columns WHERE column_id = ?", columnID)
	if err != nil {
		return fmt.Errorf("deleting column %s: %w", columnID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("column %s: %w", columnID, types.ErrNotFound)
	}
	return nil
}

// MaxColumnPosition returns the highest position in the scope, or -1 when
// the scope has no columns.
func (t *Tx) MaxColumnPosition(scope types.Scope) (int, error) {
	if err := scope.Validate(); err != nil {
		return 0, err
	}

	query := "SELECT COALESCE(MAX(position), -1) FROM columns WHERE space_id = ? AND sprint_id IS NULL"
	if scope.IsSprint() {
		query = "SELECT COALESCE(MAX(position), -1) FROM columns WHERE sprint_id = ? AND space_id IS NULL"
	}

	var max int
	if err := t.tx.QueryRow(query, scope.ID()).Scan(&max); err != nil {
		return 0, fmt.Errorf("max column position for %s: %w", scope, err)
	}
	return max, nil
}

// scanner abstracts sql.Row and sql.Rows for the hydrate helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanColumn(s scanner) (types.Column, error) {
	var (
		col      types.Column
		spaceID  sql.NullString
		sprintID sql.NullString
		wipLimit sql.NullInt64
	)
	if err := s.Scan(&col.ColumnID, &spaceID, &sprintID, &col.Name, &wipLimit, &col.Position); err != nil {
		return types.Column{}, err
	}
	switch {
	case spaceID.Valid:
		col.Scope = types.SpaceScope(spaceID.String)
	case sprintID.Valid:
		col.Scope = types.SprintScope(sprintID.String)
	}
	if wipLimit.Valid {
		col.WIPLimit = int(wipLimit.Int64)
	}
	return col, nil
}
