package memstore

import (
	"context"
	"sort"

	"filmgraph/internal/model"
	"filmgraph/internal/store"
	"filmgraph/internal/validate"
)

// CreateUser validates, enforces email and login uniqueness, assigns the
// next id and stores the user.
func (s *Store) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	if err := validate.User(user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUserUnique(user, 0); err != nil {
		return nil, err
	}

	s.nextUserID++
	stored := cloneUser(user)
	stored.ID = s.nextUserID
	s.users[stored.ID] = stored
	s.friends[stored.ID] = make(map[int64]struct{})
	return cloneUser(stored), nil
}

// UpdateUser replaces the full row keyed by id.
func (s *Store) UpdateUser(_ context.Context, user *model.User) (*model.User, error) {
	if err := validate.User(user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return nil, model.NewNotFoundError("user", user.ID)
	}
	if err := s.checkUserUnique(user, user.ID); err != nil {
		return nil, err
	}

	stored := cloneUser(user)
	s.users[stored.ID] = stored
	return cloneUser(stored), nil
}

// DeleteUser removes the user together with their likes and friendship
// edges in both directions.
func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return model.NewNotFoundError("user", id)
	}
	delete(s.users, id)
	delete(s.friends, id)
	for _, edges := range s.friends {
		delete(edges, id)
	}
	for _, likers := range s.likes {
		delete(likers, id)
	}
	return nil
}

// Users returns every user ordered by id.
func (s *Store) Users(_ context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// UserByID returns the user or a NotFoundError.
func (s *Store) UserByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, model.NewNotFoundError("user", id)
	}
	return cloneUser(u), nil
}

// checkUserUnique mirrors the Postgres uniqueness checks. Caller holds the
// lock.
func (s *Store) checkUserUnique(user *model.User, selfID int64) error {
	for id, other := range s.users {
		if id == selfID {
			continue
		}
		if other.Email == user.Email {
			return store.ErrEmailTaken
		}
		if other.Login == user.Login {
			return store.ErrLoginTaken
		}
	}
	return nil
}
