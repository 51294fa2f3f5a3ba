// Package memstore is an in-memory store backend with the same behavior as
// the Postgres store. It backs service tests and local development without a
// database.
package memstore

import (
	"context"
	"sync"

	"filmgraph/internal/model"
)

// Store keeps all entities in maps guarded by one mutex. Assigned ids are
// monotonic per entity type and never reused, even after deletes.
type Store struct {
	mu      sync.RWMutex
	films   map[int64]*model.Film
	users   map[int64]*model.User
	genres  map[int64]model.Genre
	ratings map[int64]model.Rating
	likes   map[int64]map[int64]struct{} // film id -> user ids
	friends map[int64]map[int64]struct{} // user id -> friend ids (directed)

	nextFilmID int64
	nextUserID int64
}

// New returns an empty Store. Reference data comes in through Seed.
func New() *Store {
	return &Store{
		films:   make(map[int64]*model.Film),
		users:   make(map[int64]*model.User),
		genres:  make(map[int64]model.Genre),
		ratings: make(map[int64]model.Rating),
		likes:   make(map[int64]map[int64]struct{}),
		friends: make(map[int64]map[int64]struct{}),
	}
}

// Seed installs the genre and rating reference rows.
func (s *Store) Seed(genres []model.Genre, ratings []model.Rating) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range genres {
		s.genres[g.ID] = g
	}
	for _, r := range ratings {
		s.ratings[r.ID] = r
	}
}

// FilmExists reports whether a film with this id exists.
func (s *Store) FilmExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.films[id]
	return ok, nil
}

// UserExists reports whether a user with this id exists.
func (s *Store) UserExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[id]
	return ok, nil
}

// GenreExists reports whether a genre with this id exists.
func (s *Store) GenreExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.genres[id]
	return ok, nil
}

// RatingExists reports whether a rating with this id exists.
func (s *Store) RatingExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ratings[id]
	return ok, nil
}

func cloneFilm(f *model.Film) *model.Film {
	out := *f
	if f.ReleaseDate != nil {
		d := *f.ReleaseDate
		out.ReleaseDate = &d
	}
	if f.Duration != nil {
		v := *f.Duration
		out.Duration = &v
	}
	if f.Mpa != nil {
		r := *f.Mpa
		out.Mpa = &r
	}
	out.Genres = append([]model.Genre{}, f.Genres...)
	return &out
}

func cloneUser(u *model.User) *model.User {
	out := *u
	if u.Birthday != nil {
		d := *u.Birthday
		out.Birthday = &d
	}
	return &out
}
