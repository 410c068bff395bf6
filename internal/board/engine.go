// Package board implements the board ordering and card lifecycle engine:
// column seeding, board assembly, and the create/update/move/delete
// operations for cards and columns. Every mutation runs in one store
// transaction and re-derives the dense 0..n-1 ordering of each column it
// touches before committing.
package board

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/loomworks/boardkit/internal/sqlite"
	"github.com/loomworks/boardkit/pkg/types"
)

// conflictRetries bounds the automatic retries of a write operation that
// lost a race on shared column ordering or seeding.
const conflictRetries = 3

// Engine exposes the board operations over a store. It is safe for
// concurrent use; the store serializes transactions.
type Engine struct {
	store *sqlite.Store
	log   *logrus.Logger
}

// New returns an engine over the given store. A nil logger disables
// logging.
func New(store *sqlite.Store, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Engine{store: store, log: log}
}

// update runs fn as a store transaction, retrying a bounded number of
// times when the commit collides with another writer. fn re-reads all
// state it depends on, so a retry starts from a fresh snapshot.
func (e *Engine) update(ctx context.Context, op string, fn func(tx *sqlite.Tx) error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = e.store.Update(ctx, fn)
		if err == nil || !errors.Is(err, types.ErrConflict) || attempt > conflictRetries {
			return err
		}
		e.log.WithFields(logrus.Fields{"op": op, "attempt": attempt}).
			Debug("write conflict, retrying")
	}
}
