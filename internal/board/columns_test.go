// Tests for the column lifecycle: add, rename, remove.
package board_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/boardkit/internal/sqlite"
	"github.com/loomworks/boardkit/pkg/types"
)

func TestAddColumn_AppendsAfterDefaults(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")
	ctx := context.Background()

	// Adding to an untouched board seeds the defaults first.
	col, err := engine.AddColumn(ctx, sp.SpaceID, "Blocked", 2, "")
	require.NoError(t, err)
	assert.Equal(t, "Blocked", col.Name)
	assert.Equal(t, 2, col.WIPLimit)
	assert.Equal(t, 5, col.Position)

	view := mustBoard(t, engine, sp.SpaceID, "")
	require.Len(t, view.Columns, 6)
	assert.Equal(t, "Blocked", view.Columns[5].Name)
	assert.Equal(t, 2, view.Columns[5].WIPLimit)
}

func TestAddColumn_SprintBoard(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")
	sprint := mustSprint(t, store, sp.SpaceID, "Sprint 1")

	col, err := engine.AddColumn(context.Background(), sp.SpaceID, "Review QA", 0, sprint.SprintID)
	require.NoError(t, err)
	assert.Equal(t, types.SprintScope(sprint.SprintID), col.Scope)

	sprintView := mustBoard(t, engine, sp.SpaceID, sprint.SprintID)
	require.Len(t, sprintView.Columns, 6)

	// The space board stays at the default five.
	spaceView := mustBoard(t, engine, sp.SpaceID, "")
	assert.Len(t, spaceView.Columns, 5)
}

func TestAddColumn_Validation(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")
	ctx := context.Background()

	_, err := engine.AddColumn(ctx, sp.SpaceID, "   ", 0, "")
	assert.ErrorIs(t, err, types.ErrNameRequired)

	_, err = engine.AddColumn(ctx, sp.SpaceID, "Blocked", -1, "")
	assert.ErrorIs(t, err, types.ErrInvalidWIPLimit)

	_, err = engine.AddColumn(ctx, "missing-space", "Blocked", 0, "")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRenameColumn(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")
	ctx := context.Background()

	view := mustBoard(t, engine, sp.SpaceID, "")
	backlog := columnByName(t, view, "Backlog")
	mustCreateCard(t, engine, sp.SpaceID, backlog.ID, "Card")

	require.NoError(t, engine.RenameColumn(ctx, sp.SpaceID, backlog.ID, "Icebox", ""))

	view = mustBoard(t, engine, sp.SpaceID, "")
	renamed := columnByName(t, view, "Icebox")
	assert.Equal(t, backlog.ID, renamed.ID)
	assert.Equal(t, []string{"Card"}, cardTitles(renamed), "cards survive a rename")
}

func TestRenameColumn_Errors(t *testing.T) {
	engine, store := newTestEngine(t)
	apollo := mustSpace(t, store, "Apollo")
	gemini := mustSpace(t, store, "Gemini")
	ctx := context.Background()

	view := mustBoard(t, engine, apollo.SpaceID, "")
	backlog := columnByName(t, view, "Backlog")

	assert.ErrorIs(t, engine.RenameColumn(ctx, apollo.SpaceID, backlog.ID, "  ", ""), types.ErrNameRequired)
	assert.ErrorIs(t, engine.RenameColumn(ctx, apollo.SpaceID, "missing-column", "X", ""), types.ErrNotFound)
	assert.ErrorIs(t, engine.RenameColumn(ctx, gemini.SpaceID, backlog.ID, "X", ""), types.ErrNotFound,
		"column of another space reads as not found")
}

func TestRemoveColumn_CascadesCards(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")
	ctx := context.Background()

	view := mustBoard(t, engine, sp.SpaceID, "")
	backlog := columnByName(t, view, "Backlog")
	todo := columnByName(t, view, "To Do")
	a := mustCreateCard(t, engine, sp.SpaceID, backlog.ID, "A")
	b := mustCreateCard(t, engine, sp.SpaceID, backlog.ID, "B")
	mustCreateCard(t, engine, sp.SpaceID, todo.ID, "X")

	require.NoError(t, engine.RemoveColumn(ctx, sp.SpaceID, backlog.ID, ""))

	view = mustBoard(t, engine, sp.SpaceID, "")
	require.Len(t, view.Columns, 4)
	for _, col := range view.Columns {
		assert.NotEqual(t, backlog.ID, col.ID)
	}
	assert.Equal(t, []string{"X"}, cardTitles(columnByName(t, view, "To Do")), "other columns keep their cards")

	// Every card in the removed column got the full teardown.
	err := store.View(ctx, func(tx *sqlite.Tx) error {
		for _, taskID := range []string{a.ID, b.ID} {
			_, err := tx.GetTask(taskID)
			assert.ErrorIs(t, err, types.ErrNotFound)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestRemoveColumn_SprintScopeMismatch(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")
	sprint := mustSprint(t, store, sp.SpaceID, "Sprint 1")
	ctx := context.Background()

	spaceView := mustBoard(t, engine, sp.SpaceID, "")
	spaceBacklog := columnByName(t, spaceView, "Backlog")

	// A space column named with a sprint scope is not found, and stays.
	err := engine.RemoveColumn(ctx, sp.SpaceID, spaceBacklog.ID, sprint.SprintID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	spaceView = mustBoard(t, engine, sp.SpaceID, "")
	assert.Len(t, spaceView.Columns, 5)
}

func TestRemoveColumn_EmptyColumn(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")
	ctx := context.Background()

	view := mustBoard(t, engine, sp.SpaceID, "")
	done := columnByName(t, view, "Done")

	require.NoError(t, engine.RemoveColumn(ctx, sp.SpaceID, done.ID, ""))

	view = mustBoard(t, engine, sp.SpaceID, "")
	assert.Len(t, view.Columns, 4)
}
