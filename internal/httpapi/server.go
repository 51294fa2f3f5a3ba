// Package httpapi wires HTTP handlers to the underlying services.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"filmgraph/internal/logging"
	"filmgraph/internal/model"
	"filmgraph/internal/store"
)

// FilmService captures the film-facing operations needed by the handlers.
type FilmService interface {
	Create(ctx context.Context, film *model.Film) (*model.Film, error)
	Update(ctx context.Context, film *model.Film) (*model.Film, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Film, error)
	Get(ctx context.Context, id int64) (*model.Film, error)
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
	Popular(ctx context.Context, limit int64) ([]*model.Film, error)
}

// UserService captures the user-facing operations needed by the handlers.
type UserService interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	Friends(ctx context.Context, userID int64) ([]*model.User, error)
	MutualFriends(ctx context.Context, userID, otherID int64) ([]*model.User, error)
}

// GenreService resolves the genre reference data.
type GenreService interface {
	List(ctx context.Context) ([]model.Genre, error)
	Get(ctx context.Context, id int64) (model.Genre, error)
}

// RatingService resolves the MPA rating reference data.
type RatingService interface {
	List(ctx context.Context) ([]model.Rating, error)
	Get(ctx context.Context, id int64) (model.Rating, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	films   FilmService
	users   UserService
	genres  GenreService
	ratings RatingService
}

// New configures a Server with the given services.
func New(films FilmService, users UserService, genres GenreService, ratings RatingService) *Server {
	return &Server{
		films:   films,
		users:   users,
		genres:  genres,
		ratings: ratings,
	}
}

// Routes exposes the HTTP handlers for the catalog and the social graph.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Film routes
	mux.HandleFunc("GET /films", s.handleListFilms)
	mux.HandleFunc("POST /films", s.handleCreateFilm)
	mux.HandleFunc("PUT /films", s.handleUpdateFilm)
	mux.HandleFunc("GET /films/popular", s.handlePopularFilms)
	mux.HandleFunc("GET /films/{id}", s.handleGetFilm)
	mux.HandleFunc("DELETE /films/{id}", s.handleDeleteFilm)
	mux.HandleFunc("PUT /films/{id}/like/{userId}", s.handleAddLike)
	mux.HandleFunc("DELETE /films/{id}/like/{userId}", s.handleRemoveLike)

	// User routes
	mux.HandleFunc("GET /users", s.handleListUsers)
	mux.HandleFunc("POST /users", s.handleCreateUser)
	mux.HandleFunc("PUT /users", s.handleUpdateUser)
	mux.HandleFunc("GET /users/{id}", s.handleGetUser)
	mux.HandleFunc("DELETE /users/{id}", s.handleDeleteUser)
	mux.HandleFunc("PUT /users/{id}/friends/{friendId}", s.handleAddFriend)
	mux.HandleFunc("DELETE /users/{id}/friends/{friendId}", s.handleRemoveFriend)
	mux.HandleFunc("GET /users/{id}/friends", s.handleListFriends)
	mux.HandleFunc("GET /users/{id}/friends/common/{otherId}", s.handleMutualFriends)

	// Reference data routes
	mux.HandleFunc("GET /genres", s.handleListGenres)
	mux.HandleFunc("GET /genres/{id}", s.handleGetGenre)
	mux.HandleFunc("GET /mpa", s.handleListRatings)
	mux.HandleFunc("GET /mpa/{id}", s.handleGetRating)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError translates error kinds into status codes: validation failures
// become 400, unknown ids 404, uniqueness conflicts 409, everything else 500.
// Internal details are logged, never echoed to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case model.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case model.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrFilmExists),
		errors.Is(err, store.ErrEmailTaken),
		errors.Is(err, store.ErrLoginTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logging.WithContext(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, model.NewValidationError("invalid " + name + " in path")
	}
	return id, nil
}
