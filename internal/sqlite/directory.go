// This file implements the directory records the board engine collaborates
// with: spaces, sprints and users. Only creation and lookup live here;
// richer lifecycle management belongs to the surrounding product, not the
// ordering engine.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/loomworks/boardkit/pkg/types"
)

// GetSpace retrieves a space by ID.
func (t *Tx) GetSpace(spaceID string) (types.Space, error) {
	var (
		sp        types.Space
		createdAt string
	)
	err := t.tx.QueryRow(
		"SELECT space_id, name, created_at FROM spaces WHERE space_id = ?", spaceID,
	).Scan(&sp.SpaceID, &sp.Name, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Space{}, fmt.Errorf("space %s: %w", spaceID, types.ErrNotFound)
		}
		return types.Space{}, fmt.Errorf("getting space %s: %w", spaceID, err)
	}
	sp.CreatedAt = parseTime(createdAt)
	return sp, nil
}

// GetSprint retrieves a sprint by ID, including its owning space.
func (t *Tx) GetSprint(sprintID string) (types.Sprint, error) {
	var (
		sp        types.Sprint
		createdAt string
	)
	err := t.tx.QueryRow(
		"SELECT sprint_id, space_id, name, created_at FROM sprints WHERE sprint_id = ?", sprintID,
	).Scan(&sp.SprintID, &sp.SpaceID, &sp.Name, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Sprint{}, fmt.Errorf("sprint %s: %w", sprintID, types.ErrNotFound)
		}
		return types.Sprint{}, fmt.Errorf("getting sprint %s: %w", sprintID, err)
	}
	sp.CreatedAt = parseTime(createdAt)
	return sp, nil
}

// GetUser retrieves a user by ID.
func (t *Tx) GetUser(userID string) (types.User, error) {
	var (
		u         types.User
		createdAt string
	)
	err := t.tx.QueryRow(
		"SELECT user_id, name, created_at FROM users WHERE user_id = ?", userID,
	).Scan(&u.UserID, &u.Name, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.User{}, fmt.Errorf("user %s: %w", userID, types.ErrNotFound)
		}
		return types.User{}, fmt.Errorf("getting user %s: %w", userID, err)
	}
	u.CreatedAt = parseTime(createdAt)
	return u, nil
}

// CreateSpace creates a space with a fresh UUID v7 and a zeroed sequence
// counter.
func (s *Store) CreateSpace(ctx context.Context, name string) (types.Space, error) {
	if name == "" {
		return types.Space{}, types.ErrNameRequired
	}
	sp := types.Space{SpaceID: NewID(), Name: name, CreatedAt: time.Now().UTC()}
	err := s.Update(ctx, func(tx *Tx) error {
		_, err := tx.tx.Exec(
			"INSERT INTO spaces (space_id, name, seq_counter, created_at) VALUES (?, ?, 0, ?)",
			sp.SpaceID, sp.Name, formatTime(sp.CreatedAt),
		)
		return err
	})
	if err != nil {
		return types.Space{}, fmt.Errorf("creating space %q: %w", name, err)
	}
	return sp, nil
}

// Spaces returns all spaces ordered by creation time.
func (s *Store) Spaces(ctx context.Context) ([]types.Space, error) {
	var spaces []types.Space
	err := s.View(ctx, func(tx *Tx) error {
		rows, err := tx.tx.Query("SELECT space_id, name, created_at FROM spaces ORDER BY created_at ASC")
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var (
				sp        types.Space
				createdAt string
			)
			if err := rows.Scan(&sp.SpaceID, &sp.Name, &createdAt); err != nil {
				return err
			}
			sp.CreatedAt = parseTime(createdAt)
			spaces = append(spaces, sp)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listing spaces: %w", err)
	}
	return spaces, nil
}

// CreateSprint creates a sprint inside an existing space.
func (s *Store) CreateSprint(ctx context.Context, spaceID, name string) (types.Sprint, error) {
	if name == "" {
		return types.Sprint{}, types.ErrNameRequired
	}
	sp := types.Sprint{SprintID: NewID(), SpaceID: spaceID, Name: name, CreatedAt: time.Now().UTC()}
	err := s.Update(ctx, func(tx *Tx) error {
		if _, err := tx.GetSpace(spaceID); err != nil {
			return err
		}
		_, err := tx.tx.Exec(
			"INSERT INTO sprints (sprint_id, space_id, name, created_at) VALUES (?, ?, ?, ?)",
			sp.SprintID, sp.SpaceID, sp.Name, formatTime(sp.CreatedAt),
		)
		return err
	})
	if err != nil {
		return types.Sprint{}, fmt.Errorf("creating sprint %q: %w", name, err)
	}
	return sp, nil
}

// SprintsInSpace returns a space's sprints ordered by creation time.
func (s *Store) SprintsInSpace(ctx context.Context, spaceID string) ([]types.Sprint, error) {
	var sprints []types.Sprint
	err := s.View(ctx, func(tx *Tx) error {
		rows, err := tx.tx.Query(
			"SELECT sprint_id, space_id, name, created_at FROM sprints WHERE space_id = ? ORDER BY created_at ASC",
			spaceID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var (
				sp        types.Sprint
				createdAt string
			)
			if err := rows.Scan(&sp.SprintID, &sp.SpaceID, &sp.Name, &createdAt); err != nil {
				return err
			}
			sp.CreatedAt = parseTime(createdAt)
			sprints = append(sprints, sp)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listing sprints for space %s: %w", spaceID, err)
	}
	return sprints, nil
}

// CreateUser creates a directory user.
func (s *Store) CreateUser(ctx context.Context, name string) (types.User, error) {
	if name == "" {
		return types.User{}, types.ErrNameRequired
	}
	u := types.User{UserID: NewID(), Name: name, CreatedAt: time.Now().UTC()}
	err := s.Update(ctx, func(tx *Tx) error {
		_, err := tx.tx.Exec(
			"INSERT INTO users (user_id, name, created_at) VALUES (?, ?, ?)",
			u.UserID, u.Name, formatTime(u.CreatedAt),
		)
		return err
	})
	if err != nil {
		return types.User{}, fmt.Errorf("creating user %q: %w", name, err)
	}
	return u, nil
}

// Users returns all directory users ordered by creation time.
func (s *Store) Users(ctx context.Context) ([]types.User, error) {
	var users []types.User
	err := s.View(ctx, func(tx *Tx) error {
		rows, err := tx.tx.Query("SELECT user_id, name, created_at FROM users ORDER BY created_at ASC")
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var (
				u         types.User
				createdAt string
			)
			if err := rows.Scan(&u.UserID, &u.Name, &createdAt); err != nil {
				return err
			}
			u.CreatedAt = parseTime(createdAt)
			users = append(users, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}
