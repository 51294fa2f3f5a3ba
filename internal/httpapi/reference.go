package httpapi

import (
	"net/http"

	"filmgraph/internal/model"
)

func (s *Server) handleListGenres(w http.ResponseWriter, r *http.Request) {
	list, err := s.genres.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if list == nil {
		list = []model.Genre{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	genre, err := s.genres.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, genre)
}

func (s *Server) handleListRatings(w http.ResponseWriter, r *http.Request) {
	list, err := s.ratings.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if list == nil {
		list = []model.Rating{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	rating, err := s.ratings.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rating)
}
