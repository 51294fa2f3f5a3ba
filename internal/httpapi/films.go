package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"filmgraph/internal/app/films"
	"filmgraph/internal/model"
)

func (s *Server) handleListFilms(w http.ResponseWriter, r *http.Request) {
	list, err := s.films.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if list == nil {
		list = []*model.Film{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateFilm(w http.ResponseWriter, r *http.Request) {
	var film model.Film
	if err := json.NewDecoder(r.Body).Decode(&film); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	created, err := s.films.Create(r.Context(), &film)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateFilm(w http.ResponseWriter, r *http.Request) {
	var film model.Film
	if err := json.NewDecoder(r.Body).Decode(&film); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	updated, err := s.films.Update(r.Context(), &film)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleGetFilm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	film, err := s.films.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, film)
}

func (s *Server) handleDeleteFilm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.films.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddLike(w http.ResponseWriter, r *http.Request) {
	filmID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.films.AddLike(r.Context(), filmID, userID); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveLike(w http.ResponseWriter, r *http.Request) {
	filmID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.films.RemoveLike(r.Context(), filmID, userID); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePopularFilms(w http.ResponseWriter, r *http.Request) {
	limit := int64(films.DefaultPopularLimit)
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid count parameter"})
			return
		}
		limit = parsed
	}

	list, err := s.films.Popular(r.Context(), limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if list == nil {
		list = []*model.Film{}
	}
	writeJSON(w, http.StatusOK, list)
}
