package memstore

import (
	"context"
	"sort"

	"filmgraph/internal/model"
	"filmgraph/internal/store"
	"filmgraph/internal/validate"
)

// CreateFilm mirrors the Postgres store: validate fields, require the rating
// and every genre reference to exist, enforce name uniqueness, assign the
// next id and return the stored film with genres and rating attached.
func (s *Store) CreateFilm(_ context.Context, film *model.Film) (*model.Film, error) {
	if err := validate.Film(film); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.buildFilm(film, 0)
	if err != nil {
		return nil, err
	}

	s.nextFilmID++
	stored.ID = s.nextFilmID
	s.films[stored.ID] = stored
	s.likes[stored.ID] = make(map[int64]struct{})
	return cloneFilm(stored), nil
}

// UpdateFilm replaces the full row keyed by id.
func (s *Store) UpdateFilm(_ context.Context, film *model.Film) (*model.Film, error) {
	if err := validate.Film(film); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[film.ID]; !ok {
		return nil, model.NewNotFoundError("film", film.ID)
	}
	stored, err := s.buildFilm(film, film.ID)
	if err != nil {
		return nil, err
	}
	stored.ID = film.ID
	s.films[stored.ID] = stored
	return cloneFilm(stored), nil
}

// DeleteFilm removes the film and its likes.
func (s *Store) DeleteFilm(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[id]; !ok {
		return model.NewNotFoundError("film", id)
	}
	delete(s.films, id)
	delete(s.likes, id)
	return nil
}

// Films returns every film ordered by id.
func (s *Store) Films(_ context.Context) ([]*model.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	films := make([]*model.Film, 0, len(s.films))
	for _, f := range s.films {
		films = append(films, cloneFilm(f))
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

// FilmByID returns the film or a NotFoundError.
func (s *Store) FilmByID(_ context.Context, id int64) (*model.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.films[id]
	if !ok {
		return nil, model.NewNotFoundError("film", id)
	}
	return cloneFilm(f), nil
}

// buildFilm resolves the rating and genre references and checks name
// uniqueness. Caller holds the lock.
func (s *Store) buildFilm(film *model.Film, selfID int64) (*model.Film, error) {
	var ratingID int64
	if film.Mpa != nil {
		ratingID = film.Mpa.ID
	}
	rating, ok := s.ratings[ratingID]
	if !ok {
		return nil, model.NewNotFoundError("rating", ratingID)
	}

	seen := make(map[int64]bool, len(film.Genres))
	genres := make([]model.Genre, 0, len(film.Genres))
	for _, g := range film.Genres {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		full, ok := s.genres[g.ID]
		if !ok {
			return nil, model.NewNotFoundError("genre", g.ID)
		}
		genres = append(genres, full)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })

	for id, other := range s.films {
		if id != selfID && other.Name == film.Name {
			return nil, store.ErrFilmExists
		}
	}

	stored := cloneFilm(film)
	stored.Mpa = &rating
	stored.Genres = genres
	return stored, nil
}
