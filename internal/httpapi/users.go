package httpapi

import (
	"encoding/json"
	"net/http"

	"filmgraph/internal/model"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if list == nil {
		list = []*model.User{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	created, err := s.users.Create(r.Context(), &user)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	updated, err := s.users.Update(r.Context(), &user)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.users.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	friendID, err := pathID(r, "friendId")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.users.AddFriend(r.Context(), userID, friendID); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	friendID, err := pathID(r, "friendId")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.users.RemoveFriend(r.Context(), userID, friendID); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	list, err := s.users.Friends(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if list == nil {
		list = []*model.User{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleMutualFriends(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}
	otherID, err := pathID(r, "otherId")
	if err != nil {
		respondError(w, r, err)
		return
	}

	list, err := s.users.MutualFriends(r.Context(), userID, otherID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if list == nil {
		list = []*model.User{}
	}
	writeJSON(w, http.StatusOK, list)
}
