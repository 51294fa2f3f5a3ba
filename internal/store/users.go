package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"filmgraph/internal/model"
	"filmgraph/internal/validate"
)

const selectUserColumns = `
		SELECT id, email, login, name, birthday
		FROM users`

// CreateUser validates the user, enforces email and login uniqueness and
// persists the row. A blank display name has already been replaced with the
// login by validation.
func (s *Store) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := validate.User(user); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := checkUserUnique(ctx, tx, user, 0); err != nil {
		return nil, err
	}

	var userID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (email, login, name, birthday)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, user.Email, user.Login, user.Name, *user.Birthday).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, model.NewInternalError("insert user", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	user.ID = userID
	return user, nil
}

// UpdateUser replaces the full user row keyed by id.
func (s *Store) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := validate.User(user); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := checkUserUnique(ctx, tx, user, user.ID); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE users
		SET email = $1, login = $2, name = $3, birthday = $4
		WHERE id = $5
	`, user.Email, user.Login, user.Name, *user.Birthday, user.ID)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, model.NewNotFoundError("user", user.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return user, nil
}

// DeleteUser removes the user row; likes and friendship edges go with it.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM users WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return model.NewNotFoundError("user", id)
	}
	return nil
}

// Users returns every user ordered by id.
func (s *Store) Users(ctx context.Context) ([]*model.User, error) {
	rows, err := s.db.QueryContext(ctx, selectUserColumns+`
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// UserByID returns the user or a NotFoundError.
func (s *Store) UserByID(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{}
	var birthday model.Date
	err := s.db.QueryRowContext(ctx, selectUserColumns+`
		WHERE id = $1`, id).
		Scan(&user.ID, &user.Email, &user.Login, &user.Name, &birthday)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	user.Birthday = &birthday
	return user, nil
}

func checkUserUnique(ctx context.Context, tx *sql.Tx, user *model.User, selfID int64) error {
	var taken bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)
	`, user.Email, selfID).Scan(&taken); err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}

	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE login = $1 AND id <> $2)
	`, user.Login, selfID).Scan(&taken); err != nil {
		return fmt.Errorf("check login: %w", err)
	}
	if taken {
		return ErrLoginTaken
	}
	return nil
}

func scanUsers(rows *sql.Rows) ([]*model.User, error) {
	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		var birthday model.Date
		if err := rows.Scan(&user.ID, &user.Email, &user.Login, &user.Name, &birthday); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		user.Birthday = &birthday
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
