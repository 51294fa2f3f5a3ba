package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"filmgraph/internal/model"
	"filmgraph/internal/validate"
)

const selectFilmColumns = `
		SELECT id, name, description, release_date, duration, rating_id
		FROM films`

// CreateFilm validates the film, checks its rating and genre references and
// persists the row together with its genre links in one transaction. The
// stored film is returned with its genres and rating fully attached.
func (s *Store) CreateFilm(ctx context.Context, film *model.Film) (*model.Film, error) {
	if err := validate.Film(film); err != nil {
		return nil, err
	}
	genres := dedupeGenres(film.Genres)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := checkFilmRefs(ctx, tx, film.Mpa, genres); err != nil {
		return nil, err
	}

	var taken bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM films WHERE name = $1)
	`, film.Name).Scan(&taken); err != nil {
		return nil, fmt.Errorf("check film name: %w", err)
	}
	if taken {
		return nil, ErrFilmExists
	}

	var filmID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO films (name, description, release_date, duration, rating_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, film.Name, film.Description, *film.ReleaseDate, *film.Duration, film.Mpa.ID).Scan(&filmID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrFilmExists
		}
		return nil, model.NewInternalError("insert film", err)
	}

	if err := insertFilmGenres(ctx, tx, filmID, genres); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.FilmByID(ctx, filmID)
}

// UpdateFilm replaces the full film row and resynchronizes its genre links to
// exactly the supplied set.
func (s *Store) UpdateFilm(ctx context.Context, film *model.Film) (*model.Film, error) {
	if err := validate.Film(film); err != nil {
		return nil, err
	}
	genres := dedupeGenres(film.Genres)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := checkFilmRefs(ctx, tx, film.Mpa, genres); err != nil {
		return nil, err
	}

	var taken bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM films WHERE name = $1 AND id <> $2)
	`, film.Name, film.ID).Scan(&taken); err != nil {
		return nil, fmt.Errorf("check film name: %w", err)
	}
	if taken {
		return nil, ErrFilmExists
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE films
		SET name = $1, description = $2, release_date = $3, duration = $4, rating_id = $5
		WHERE id = $6
	`, film.Name, film.Description, *film.ReleaseDate, *film.Duration, film.Mpa.ID, film.ID)
	if err != nil {
		return nil, fmt.Errorf("update film: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, model.NewNotFoundError("film", film.ID)
	}

	// Full replace of the genre links, never a diff-patch.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM film_genres WHERE film_id = $1
	`, film.ID); err != nil {
		return nil, fmt.Errorf("clear film genres: %w", err)
	}
	if err := insertFilmGenres(ctx, tx, film.ID, genres); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return s.FilmByID(ctx, film.ID)
}

// DeleteFilm removes the film row; its likes and genre links go with it.
func (s *Store) DeleteFilm(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM films WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete film: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return model.NewNotFoundError("film", id)
	}
	return nil
}

// Films returns every film with genres and rating attached, ordered by id.
func (s *Store) Films(ctx context.Context) ([]*model.Film, error) {
	rows, err := s.db.QueryContext(ctx, selectFilmColumns+`
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select films: %w", err)
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

// FilmByID returns the film or a NotFoundError.
func (s *Store) FilmByID(ctx context.Context, id int64) (*model.Film, error) {
	film := &model.Film{}
	var (
		releaseDate model.Date
		duration    int64
		ratingID    int64
	)
	err := s.db.QueryRowContext(ctx, selectFilmColumns+`
		WHERE id = $1`, id).
		Scan(&film.ID, &film.Name, &film.Description, &releaseDate, &duration, &ratingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.NewNotFoundError("film", id)
		}
		return nil, fmt.Errorf("select film: %w", err)
	}
	film.ReleaseDate = &releaseDate
	film.Duration = &duration
	film.Mpa = &model.Rating{ID: ratingID}

	if err := s.hydrateFilms(ctx, []*model.Film{film}); err != nil {
		return nil, err
	}
	return film, nil
}

// hydrateFilms attaches full Rating and Genre records to the given films in
// two batched queries, keyed by film id. Row decoding never reaches back into
// other tables on its own.
func (s *Store) hydrateFilms(ctx context.Context, films []*model.Film) error {
	if len(films) == 0 {
		return nil
	}

	filmIDs := make([]int64, 0, len(films))
	ratingIDs := make([]int64, 0, len(films))
	byID := make(map[int64]*model.Film, len(films))
	for _, f := range films {
		filmIDs = append(filmIDs, f.ID)
		ratingIDs = append(ratingIDs, f.Mpa.ID)
		byID[f.ID] = f
		f.Genres = []model.Genre{}
	}

	ratingRows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM ratings
		WHERE id = ANY($1::bigint[])
	`, pq.Array(ratingIDs))
	if err != nil {
		return fmt.Errorf("select film ratings: %w", err)
	}
	defer ratingRows.Close()

	ratings := make(map[int64]string)
	for ratingRows.Next() {
		var (
			id   int64
			name string
		)
		if err := ratingRows.Scan(&id, &name); err != nil {
			return fmt.Errorf("scan rating: %w", err)
		}
		ratings[id] = name
	}
	if err := ratingRows.Err(); err != nil {
		return fmt.Errorf("iterate ratings: %w", err)
	}
	for _, f := range films {
		f.Mpa.Name = ratings[f.Mpa.ID]
	}

	genreRows, err := s.db.QueryContext(ctx, `
		SELECT fg.film_id, g.id, g.name
		FROM film_genres AS fg
		JOIN genres AS g ON g.id = fg.genre_id
		WHERE fg.film_id = ANY($1::bigint[])
		ORDER BY fg.film_id ASC, g.id ASC
	`, pq.Array(filmIDs))
	if err != nil {
		return fmt.Errorf("select film genres: %w", err)
	}
	defer genreRows.Close()

	for genreRows.Next() {
		var (
			filmID int64
			genre  model.Genre
		)
		if err := genreRows.Scan(&filmID, &genre.ID, &genre.Name); err != nil {
			return fmt.Errorf("scan film genre: %w", err)
		}
		if f, ok := byID[filmID]; ok {
			f.Genres = append(f.Genres, genre)
		}
	}
	if err := genreRows.Err(); err != nil {
		return fmt.Errorf("iterate film genres: %w", err)
	}

	return nil
}

func scanFilms(rows *sql.Rows) ([]*model.Film, error) {
	var films []*model.Film
	for rows.Next() {
		film := &model.Film{}
		var (
			releaseDate model.Date
			duration    int64
			ratingID    int64
		)
		if err := rows.Scan(&film.ID, &film.Name, &film.Description, &releaseDate, &duration, &ratingID); err != nil {
			return nil, fmt.Errorf("scan film: %w", err)
		}
		film.ReleaseDate = &releaseDate
		film.Duration = &duration
		film.Mpa = &model.Rating{ID: ratingID}
		films = append(films, film)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate films: %w", err)
	}
	return films, nil
}

func checkFilmRefs(ctx context.Context, tx *sql.Tx, mpa *model.Rating, genres []model.Genre) error {
	var ratingID int64
	if mpa != nil {
		ratingID = mpa.ID
	}
	var ok bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM ratings WHERE id = $1)
	`, ratingID).Scan(&ok); err != nil {
		return fmt.Errorf("check rating: %w", err)
	}
	if !ok {
		return model.NewNotFoundError("rating", ratingID)
	}

	for _, g := range genres {
		if err := tx.QueryRowContext(ctx, `
			SELECT EXISTS(SELECT 1 FROM genres WHERE id = $1)
		`, g.ID).Scan(&ok); err != nil {
			return fmt.Errorf("check genre: %w", err)
		}
		if !ok {
			return model.NewNotFoundError("genre", g.ID)
		}
	}
	return nil
}

func insertFilmGenres(ctx context.Context, tx *sql.Tx, filmID int64, genres []model.Genre) error {
	for _, g := range genres {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO film_genres (film_id, genre_id)
			VALUES ($1, $2)
		`, filmID, g.ID); err != nil {
			return fmt.Errorf("insert film genre: %w", err)
		}
	}
	return nil
}

// dedupeGenres keeps the first occurrence of each genre id, preserving the
// supplied order.
func dedupeGenres(genres []model.Genre) []model.Genre {
	seen := make(map[int64]bool, len(genres))
	out := make([]model.Genre, 0, len(genres))
	for _, g := range genres {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		out = append(out, g)
	}
	return out
}
