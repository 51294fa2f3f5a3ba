package store

import (
	"context"
	"fmt"

	"filmgraph/internal/model"
)

// AddLike records that the user likes the film. The pair is unique in the
// table, so repeating the operation is a no-op.
func (s *Store) AddLike(ctx context.Context, filmID, userID int64) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO film_likes (film_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, filmID, userID); err != nil {
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

// RemoveLike deletes the like pair if present; absence is a no-op.
func (s *Store) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM film_likes
		WHERE film_id = $1 AND user_id = $2
	`, filmID, userID); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

// PopularFilms returns liked films ordered by like-count descending, ties
// broken by ascending film id. Films with no likes never appear.
func (s *Store) PopularFilms(ctx context.Context, limit int64) ([]*model.Film, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id, f.name, f.description, f.release_date, f.duration, f.rating_id
		FROM films AS f
		JOIN film_likes AS l ON l.film_id = f.id
		GROUP BY f.id, f.name, f.description, f.release_date, f.duration, f.rating_id
		ORDER BY COUNT(l.user_id) DESC, f.id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select popular films: %w", err)
	}
	defer rows.Close()

	films, err := scanFilms(rows)
	if err != nil {
		return nil, err
	}
	if err := s.hydrateFilms(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}
