// Tests for default column seeding and board assembly.
package board_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/boardkit/pkg/types"
)

func TestBoard_SeedsDefaultColumns(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")

	view := mustBoard(t, engine, sp.SpaceID, "")

	require.Len(t, view.Columns, 5)
	wantNames := []string{"Backlog", "To Do", "In Progress", "In Review", "Done"}
	wantLimits := []int{0, 0, 5, 3, 0}
	for i, col := range view.Columns {
		assert.Equal(t, wantNames[i], col.Name)
		assert.Equal(t, wantLimits[i], col.WIPLimit)
		assert.Equal(t, i, col.Position)
		assert.Empty(t, col.Cards)
	}
	assert.Equal(t, 1, view.NextSequence)
}

func TestBoard_SeedingIsIdempotent(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")

	first := mustBoard(t, engine, sp.SpaceID, "")
	second := mustBoard(t, engine, sp.SpaceID, "")

	require.Len(t, second.Columns, 5)
	for i := range first.Columns {
		assert.Equal(t, first.Columns[i].ID, second.Columns[i].ID, "reload must not reseed")
	}
}

func TestBoard_SprintBoardIsIndependent(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")
	sprint := mustSprint(t, store, sp.SpaceID, "Sprint 1")

	spaceView := mustBoard(t, engine, sp.SpaceID, "")
	sprintView := mustBoard(t, engine, sp.SpaceID, sprint.SprintID)

	require.Len(t, sprintView.Columns, 5)
	spaceIDs := map[string]bool{}
	for _, col := range spaceView.Columns {
		spaceIDs[col.ID] = true
	}
	for _, col := range sprintView.Columns {
		assert.False(t, spaceIDs[col.ID], "sprint board must get its own columns")
	}
}

func TestBoard_UnknownSpace(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Board(context.Background(), "missing", "")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestBoard_SprintOfAnotherSpace(t *testing.T) {
	engine, store := newTestEngine(t)
	apollo := mustSpace(t, store, "Apollo")
	gemini := mustSpace(t, store, "Gemini")
	sprint := mustSprint(t, store, gemini.SpaceID, "Sprint 1")

	_, err := engine.Board(context.Background(), apollo.SpaceID, sprint.SprintID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestBoard_NextSequenceTracksScope(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")
	sprint := mustSprint(t, store, sp.SpaceID, "Sprint 1")

	spaceView := mustBoard(t, engine, sp.SpaceID, "")
	backlog := columnByName(t, spaceView, "Backlog")
	mustCreateCard(t, engine, sp.SpaceID, backlog.ID, "First")
	mustCreateCard(t, engine, sp.SpaceID, backlog.ID, "Second")

	spaceView = mustBoard(t, engine, sp.SpaceID, "")
	assert.Equal(t, 3, spaceView.NextSequence)

	// The sprint has pulled in no items, so its observed maximum is zero.
	sprintView := mustBoard(t, engine, sp.SpaceID, sprint.SprintID)
	assert.Equal(t, 1, sprintView.NextSequence)

	sprintTodo := columnByName(t, sprintView, "To Do")
	card := mustCreateCard(t, engine, sp.SpaceID, sprintTodo.ID, "Sprint work")
	assert.Equal(t, 3, card.SequenceNumber, "sequence numbers are allocated space-wide")

	sprintView = mustBoard(t, engine, sp.SpaceID, sprint.SprintID)
	assert.Equal(t, 4, sprintView.NextSequence)
}

func TestBoard_AssigneeNameResolution(t *testing.T) {
	engine, store := newTestEngine(t)
	sp := mustSpace(t, store, "Apollo")
	ada := mustUser(t, store, "Ada")

	view := mustBoard(t, engine, sp.SpaceID, "")
	backlog := columnByName(t, view, "Backlog")

	card, err := engine.CreateCard(context.Background(), sp.SpaceID, backlog.ID,
		types.CardDraft{Title: "Assigned", AssigneeID: ada.UserID}, "tester")
	require.NoError(t, err)
	assert.Equal(t, ada.UserID, card.AssigneeID)
	assert.Equal(t, "Ada", card.AssigneeName)

	// An assignee missing from the directory degrades to an empty name.
	card, err = engine.CreateCard(context.Background(), sp.SpaceID, backlog.ID,
		types.CardDraft{Title: "Ghost", AssigneeID: "no-such-user"}, "tester")
	require.NoError(t, err)
	assert.Equal(t, "no-such-user", card.AssigneeID)
	assert.Empty(t, card.AssigneeName)
}
