package store

import (
	"context"
	"fmt"

	"filmgraph/internal/model"
)

// AddFriend records a directed friendship edge from userID to friendID.
// Adding A->B does not imply B->A. Repeating the operation is a no-op, and a
// reflexive edge (userID == friendID) is allowed.
func (s *Store) AddFriend(ctx context.Context, userID, friendID int64) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO friendships (user_id, friend_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, friendID); err != nil {
		return fmt.Errorf("insert friendship: %w", err)
	}
	return nil
}

// RemoveFriend deletes the directed edge if present; absence is a no-op.
func (s *Store) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM friendships
		WHERE user_id = $1 AND friend_id = $2
	`, userID, friendID); err != nil {
		return fmt.Errorf("delete friendship: %w", err)
	}
	return nil
}

// Friends returns the users that userID points at, ordered by user id.
func (s *Store) Friends(ctx context.Context, userID int64) ([]*model.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.email, u.login, u.name, u.birthday
		FROM users AS u
		JOIN friendships AS f ON f.friend_id = u.id
		WHERE f.user_id = $1
		ORDER BY u.id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select friends: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// MutualFriends returns the intersection of both users' directed friend
// sets, ordered by user id.
func (s *Store) MutualFriends(ctx context.Context, userID, otherID int64) ([]*model.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.email, u.login, u.name, u.birthday
		FROM users AS u
		WHERE u.id IN (
			SELECT friend_id FROM friendships WHERE user_id = $1
			INTERSECT
			SELECT friend_id FROM friendships WHERE user_id = $2
		)
		ORDER BY u.id ASC
	`, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("select mutual friends: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}
