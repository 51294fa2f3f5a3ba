package memstore

import (
	"context"
	"sort"

	"filmgraph/internal/model"
)

// AddLike records the like pair; duplicates are a no-op.
func (s *Store) AddLike(_ context.Context, filmID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	likers, ok := s.likes[filmID]
	if !ok {
		likers = make(map[int64]struct{})
		s.likes[filmID] = likers
	}
	likers[userID] = struct{}{}
	return nil
}

// RemoveLike deletes the like pair if present; absence is a no-op.
func (s *Store) RemoveLike(_ context.Context, filmID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if likers, ok := s.likes[filmID]; ok {
		delete(likers, userID)
	}
	return nil
}

// PopularFilms ranks liked films by like-count descending, ties by ascending
// film id. Films with no likes are excluded, matching the join-based query.
func (s *Store) PopularFilms(_ context.Context, limit int64) ([]*model.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type ranked struct {
		film  *model.Film
		count int
	}
	var liked []ranked
	for id, likers := range s.likes {
		if len(likers) == 0 {
			continue
		}
		f, ok := s.films[id]
		if !ok {
			continue
		}
		liked = append(liked, ranked{film: f, count: len(likers)})
	}

	sort.Slice(liked, func(i, j int) bool {
		if liked[i].count != liked[j].count {
			return liked[i].count > liked[j].count
		}
		return liked[i].film.ID < liked[j].film.ID
	})

	if limit < 0 {
		limit = 0
	}
	if int64(len(liked)) > limit {
		liked = liked[:limit]
	}

	films := make([]*model.Film, 0, len(liked))
	for _, r := range liked {
		films = append(films, cloneFilm(r.film))
	}
	return films, nil
}

// LikeCount reports how many users like the film.
func (s *Store) LikeCount(_ context.Context, filmID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.likes[filmID]), nil
}

// AddFriend records the directed edge userID -> friendID; duplicates are a
// no-op and reflexive edges are allowed.
func (s *Store) AddFriend(_ context.Context, userID, friendID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	edges, ok := s.friends[userID]
	if !ok {
		edges = make(map[int64]struct{})
		s.friends[userID] = edges
	}
	edges[friendID] = struct{}{}
	return nil
}

// RemoveFriend deletes the directed edge if present; absence is a no-op.
func (s *Store) RemoveFriend(_ context.Context, userID, friendID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if edges, ok := s.friends[userID]; ok {
		delete(edges, friendID)
	}
	return nil
}

// Friends returns the users userID points at, ordered by id.
func (s *Store) Friends(_ context.Context, userID int64) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var friends []*model.User
	for id := range s.friends[userID] {
		if u, ok := s.users[id]; ok {
			friends = append(friends, cloneUser(u))
		}
	}
	sort.Slice(friends, func(i, j int) bool { return friends[i].ID < friends[j].ID })
	return friends, nil
}

// MutualFriends returns the intersection of both directed friend sets,
// ordered by id.
func (s *Store) MutualFriends(_ context.Context, userID, otherID int64) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var mutual []*model.User
	for id := range s.friends[userID] {
		if _, ok := s.friends[otherID][id]; !ok {
			continue
		}
		if u, ok := s.users[id]; ok {
			mutual = append(mutual, cloneUser(u))
		}
	}
	sort.Slice(mutual, func(i, j int) bool { return mutual[i].ID < mutual[j].ID })
	return mutual, nil
}
