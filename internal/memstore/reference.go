package memstore

import (
	"context"
	"sort"

	"filmgraph/internal/model"
)

// Genres returns all genres sorted ascending by id.
func (s *Store) Genres(_ context.Context) ([]model.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	genres := make([]model.Genre, 0, len(s.genres))
	for _, g := range s.genres {
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

// GenreByID returns the genre or a NotFoundError.
func (s *Store) GenreByID(_ context.Context, id int64) (model.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.genres[id]
	if !ok {
		return model.Genre{}, model.NewNotFoundError("genre", id)
	}
	return g, nil
}

// Ratings returns all MPA ratings sorted ascending by id.
func (s *Store) Ratings(_ context.Context) ([]model.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ratings := make([]model.Rating, 0, len(s.ratings))
	for _, r := range s.ratings {
		ratings = append(ratings, r)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings, nil
}

// RatingByID returns the rating or a NotFoundError.
func (s *Store) RatingByID(_ context.Context, id int64) (model.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.ratings[id]
	if !ok {
		return model.Rating{}, model.NewNotFoundError("rating", id)
	}
	return r, nil
}
