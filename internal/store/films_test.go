package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"filmgraph/internal/model"
	"filmgraph/internal/validate"
)

func int64Ptr(v int64) *int64 { return &v }

func datePtr(d model.Date) *model.Date { return &d }

func testFilm() *model.Film {
	return &model.Film{
		Name:        "Alien",
		Description: "The crew of a commercial starship picks up a distress call.",
		ReleaseDate: datePtr(model.NewDate(1979, time.May, 25)),
		Duration:    int64Ptr(117),
		Mpa:         &model.Rating{ID: 4},
		Genres:      []model.Genre{{ID: 4}, {ID: 6}},
	}
}

func expectRatingExists(mock sqlmock.Sqlmock, id int64, exists bool) {
	mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT EXISTS(SELECT 1 FROM ratings WHERE id = $1)
		`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func expectGenreExists(mock sqlmock.Sqlmock, id int64, exists bool) {
	mock.ExpectQuery(regexp.QuoteMeta(`
				SELECT EXISTS(SELECT 1 FROM genres WHERE id = $1)
			`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func expectFilmHydration(mock sqlmock.Sqlmock, filmID, ratingID int64, ratingName string, genres []model.Genre) {
	ratingRows := sqlmock.NewRows([]string{"id", "name"}).AddRow(ratingID, ratingName)
	mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT id, name
			FROM ratings
			WHERE id = ANY($1::bigint[])
		`)).
		WithArgs(pq.Array([]int64{ratingID})).
		WillReturnRows(ratingRows)

	genreRows := sqlmock.NewRows([]string{"film_id", "id", "name"})
	for _, g := range genres {
		genreRows.AddRow(filmID, g.ID, g.Name)
	}
	mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT fg.film_id, g.id, g.name
			FROM film_genres AS fg
			JOIN genres AS g ON g.id = fg.genre_id
			WHERE fg.film_id = ANY($1::bigint[])
			ORDER BY fg.film_id ASC, g.id ASC
		`)).
		WithArgs(pq.Array([]int64{filmID})).
		WillReturnRows(genreRows)
}

func TestCreateFilmSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)
	film := testFilm()

	mock.ExpectBegin()
	expectRatingExists(mock, 4, true)
	expectGenreExists(mock, 4, true)
	expectGenreExists(mock, 6, true)
	mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT EXISTS(SELECT 1 FROM films WHERE name = $1)
		`)).
		WithArgs("Alien").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO films (name, description, release_date, duration, rating_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`)).
		WithArgs("Alien", film.Description, *film.ReleaseDate, int64(117), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectExec(regexp.QuoteMeta(`
				INSERT INTO film_genres (film_id, genre_id)
				VALUES ($1, $2)
			`)).
		WithArgs(int64(10), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`
				INSERT INTO film_genres (film_id, genre_id)
				VALUES ($1, $2)
			`)).
		WithArgs(int64(10), int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(regexp.QuoteMeta(selectFilmColumns+`
		WHERE id = $1`)).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "release_date", "duration", "rating_id"}).
			AddRow(int64(10), "Alien", film.Description, film.ReleaseDate.Time, int64(117), int64(4)))
	expectFilmHydration(mock, 10, 4, "R", []model.Genre{{ID: 4, Name: "Thriller"}, {ID: 6, Name: "Action"}})

	got, err := s.CreateFilm(context.Background(), film)
	if err != nil {
		t.Fatalf("CreateFilm error: %v", err)
	}
	if got.ID != 10 {
		t.Fatalf("expected film ID 10, got %d", got.ID)
	}
	if got.Mpa == nil || got.Mpa.Name != "R" {
		t.Fatalf("expected hydrated MPA rating, got %+v", got.Mpa)
	}
	if len(got.Genres) != 2 || got.Genres[0].Name != "Thriller" {
		t.Fatalf("expected hydrated genres, got %+v", got.Genres)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateFilmDuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)
	film := testFilm()
	film.Genres = nil

	mock.ExpectBegin()
	expectRatingExists(mock, 4, true)
	mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT EXISTS(SELECT 1 FROM films WHERE name = $1)
		`)).
		WithArgs("Alien").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	if _, err := s.CreateFilm(context.Background(), film); !errors.Is(err, ErrFilmExists) {
		t.Fatalf("expected ErrFilmExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateFilmUnknownRating(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)
	film := testFilm()
	film.Mpa = &model.Rating{ID: 99}
	film.Genres = nil

	mock.ExpectBegin()
	expectRatingExists(mock, 99, false)
	mock.ExpectRollback()

	_, err = s.CreateFilm(context.Background(), film)
	if !model.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateFilmValidationSkipsDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)
	film := testFilm()
	film.Name = ""

	if _, err := s.CreateFilm(context.Background(), film); !errors.Is(err, validate.ErrFilmNameRequired) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateFilmNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)
	film := testFilm()
	film.ID = 55
	film.Genres = nil

	mock.ExpectBegin()
	expectRatingExists(mock, 4, true)
	mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT EXISTS(SELECT 1 FROM films WHERE name = $1 AND id <> $2)
		`)).
		WithArgs("Alien", int64(55)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(`
			UPDATE films
			SET name = $1, description = $2, release_date = $3, duration = $4, rating_id = $5
			WHERE id = $6
		`)).
		WithArgs("Alien", film.Description, *film.ReleaseDate, int64(117), int64(4), int64(55)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err = s.UpdateFilm(context.Background(), film)
	if !model.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteFilm(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM films WHERE id = $1
	`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.DeleteFilm(context.Background(), 7); err != nil {
		t.Fatalf("DeleteFilm error: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM films WHERE id = $1
	`)).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteFilm(context.Background(), 8); !model.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFilmByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectFilmColumns+`
		WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "release_date", "duration", "rating_id"}))

	_, err = s.FilmByID(context.Background(), 404)
	if !model.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFilmsHydratesGenresAndRatings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	release := time.Date(1979, time.May, 25, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(selectFilmColumns+`
		ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "release_date", "duration", "rating_id"}).
			AddRow(int64(1), "Alien", "desc", release, int64(117), int64(4)).
			AddRow(int64(2), "Aliens", "desc", release, int64(137), int64(4)))

	mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT id, name
			FROM ratings
			WHERE id = ANY($1::bigint[])
		`)).
		WithArgs(pq.Array([]int64{4, 4})).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(4), "R"))

	mock.ExpectQuery(regexp.QuoteMeta(`
			SELECT fg.film_id, g.id, g.name
			FROM film_genres AS fg
			JOIN genres AS g ON g.id = fg.genre_id
			WHERE fg.film_id = ANY($1::bigint[])
			ORDER BY fg.film_id ASC, g.id ASC
		`)).
		WithArgs(pq.Array([]int64{1, 2})).
		WillReturnRows(sqlmock.NewRows([]string{"film_id", "id", "name"}).
			AddRow(int64(1), int64(4), "Thriller").
			AddRow(int64(2), int64(4), "Thriller").
			AddRow(int64(2), int64(6), "Action"))

	films, err := s.Films(context.Background())
	if err != nil {
		t.Fatalf("Films error: %v", err)
	}
	if len(films) != 2 {
		t.Fatalf("expected 2 films, got %d", len(films))
	}
	if films[0].Mpa.Name != "R" || films[1].Mpa.Name != "R" {
		t.Fatalf("expected both films rated R, got %+v and %+v", films[0].Mpa, films[1].Mpa)
	}
	if len(films[0].Genres) != 1 || len(films[1].Genres) != 2 {
		t.Fatalf("unexpected genre hydration: %+v / %+v", films[0].Genres, films[1].Genres)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDedupeGenres(t *testing.T) {
	got := dedupeGenres([]model.Genre{{ID: 2}, {ID: 1}, {ID: 2}, {ID: 3}, {ID: 1}})
	if len(got) != 3 {
		t.Fatalf("expected 3 genres, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 1 || got[2].ID != 3 {
		t.Fatalf("expected first-occurrence order, got %+v", got)
	}
}
