// Shared fixtures for the board engine tests. Every test gets an isolated
// store in a temp directory.
package board_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loomworks/boardkit/internal/board"
	"github.com/loomworks/boardkit/internal/sqlite"
	"github.com/loomworks/boardkit/pkg/types"
)

func newTestEngine(t *testing.T) (*board.Engine, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return board.New(store, nil), store
}

func mustSpace(t *testing.T, store *sqlite.Store, name string) types.Space {
	t.Helper()
	sp, err := store.CreateSpace(context.Background(), name)
	require.NoError(t, err)
	return sp
}

func mustSprint(t *testing.T, store *sqlite.Store, spaceID, name string) types.Sprint {
	t.Helper()
	sp, err := store.CreateSprint(context.Background(), spaceID, name)
	require.NoError(t, err)
	return sp
}

func mustUser(t *testing.T, store *sqlite.Store, name string) types.User {
	t.Helper()
	u, err := store.CreateUser(context.Background(), name)
	require.NoError(t, err)
	return u
}

// mustBoard loads a board or fails.
func mustBoard(t *testing.T, e *board.Engine, spaceID, sprintID string) *types.Board {
	t.Helper()
	view, err := e.Board(context.Background(), spaceID, sprintID)
	require.NoError(t, err)
	return view
}

// mustCreateCard creates a card with just a title.
func mustCreateCard(t *testing.T, e *board.Engine, spaceID, columnID, title string) *types.BoardCard {
	t.Helper()
	card, err := e.CreateCard(context.Background(), spaceID, columnID, types.CardDraft{Title: title}, "tester")
	require.NoError(t, err)
	return card
}

// columnByName finds a board column by display name.
func columnByName(t *testing.T, view *types.Board, name string) types.BoardColumn {
	t.Helper()
	for _, col := range view.Columns {
		if col.Name == name {
			return col
		}
	}
	t.Fatalf("column %q not on board", name)
	return types.BoardColumn{}
}

// cardTitles lists a column's card titles in position order.
func cardTitles(col types.BoardColumn) []string {
	titles := make([]string, 0, len(col.Cards))
	for _, c := range col.Cards {
		titles = append(titles, c.Title)
	}
	return titles
}
