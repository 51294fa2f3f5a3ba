// Package users coordinates user accounts and the directed friendship graph.
package users

import (
	"context"

	"filmgraph/internal/model"
	"filmgraph/internal/validate"
)

// Store captures the persistence needs for user workflows.
type Store interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	Users(ctx context.Context) ([]*model.User, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	Friends(ctx context.Context, userID int64) ([]*model.User, error)
	MutualFriends(ctx context.Context, userID, otherID int64) ([]*model.User, error)
}

// Service exposes user-related workflows.
type Service interface {
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

type service struct {
	store Store
	check *validate.Checker
}

// New wires a Service backed by the provided Store and existence Checker.
func New(store Store, check *validate.Checker) Service {
	return &service{store: store, check: check}
}

func (s *service) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateUser(ctx, user)
}

func (s *service) Update(ctx context.Context, user *model.User) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.check.RequireUser(ctx, user.ID); err != nil {
		return nil, err
	}
	return s.store.UpdateUser(ctx, user)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteUser(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Users(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UserByID(ctx, id)
}

// AddFriend requires both users to exist, then records the directed edge.
// A->B never implies B->A.
func (s *service) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.check.RequireUser(ctx, userID); err != nil {
		return err
	}
	if err := s.check.RequireUser(ctx, friendID); err != nil {
		return err
	}
	return s.store.AddFriend(ctx, userID, friendID)
}

// RemoveFriend requires both users to exist; removing an absent edge is a
// no-op.
func (s *service) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.check.RequireUser(ctx, userID); err != nil {
		return err
	}
	if err := s.check.RequireUser(ctx, friendID); err != nil {
		return err
	}
	return s.store.RemoveFriend(ctx, userID, friendID)
}

func (s *service) Friends(ctx context.Context, userID int64) ([]*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.check.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.Friends(ctx, userID)
}

func (s *service) MutualFriends(ctx context.Context, userID, otherID int64) ([]*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.check.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.check.RequireUser(ctx, otherID); err != nil {
		return nil, err
	}
	return s.store.MutualFriends(ctx, userID, otherID)
}
