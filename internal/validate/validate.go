// Package validate enforces field-level well-formedness and cross-entity
// existence before any mutation commits.
package validate

import (
	"strings"
	"time"

	"filmgraph/internal/model"
)

// EarliestRelease is the first public film screening; no release date may
// precede it.
var EarliestRelease = model.NewDate(1895, time.December, 28)

// Field-check failures. Each check has its own identity so tests and callers
// can tell failures apart with errors.Is.
var (
	ErrFilmNameRequired        = model.NewValidationError("film name is required")
	ErrFilmDescriptionRequired = model.NewValidationError("film description is required")
	ErrFilmDescriptionTooLong  = model.NewValidationError("film description exceeds 200 characters")
	ErrFilmReleaseDateRequired = model.NewValidationError("film release date is required")
	ErrFilmReleaseDateTooEarly = model.NewValidationError("film release date predates 1895-12-28")
	ErrFilmDurationRequired    = model.NewValidationError("film duration is required")
	ErrFilmDurationNegative    = model.NewValidationError("film duration cannot be negative")

	ErrUserEmailRequired    = model.NewValidationError("user email is required")
	ErrUserEmailInvalid     = model.NewValidationError("user email must contain @")
	ErrUserLoginRequired    = model.NewValidationError("user login is required")
	ErrUserLoginHasSpaces   = model.NewValidationError("user login cannot contain spaces")
	ErrUserBirthdayRequired = model.NewValidationError("user birthday is required")
	ErrUserBirthdayFuture   = model.NewValidationError("user birthday cannot be in the future")
)

const maxDescriptionLen = 200

// Film checks the film's fields in a fixed order; the first failing check
// determines the returned error.
func Film(f *model.Film) error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrFilmNameRequired
	}
	if strings.TrimSpace(f.Description) == "" {
		return ErrFilmDescriptionRequired
	}
	if len([]rune(f.Description)) > maxDescriptionLen {
		return ErrFilmDescriptionTooLong
	}
	if f.ReleaseDate == nil || f.ReleaseDate.IsZero() {
		return ErrFilmReleaseDateRequired
	}
	if f.ReleaseDate.Before(EarliestRelease.Time) {
		return ErrFilmReleaseDateTooEarly
	}
	if f.Duration == nil {
		return ErrFilmDurationRequired
	}
	if *f.Duration < 0 {
		return ErrFilmDurationNegative
	}
	return nil
}

// User checks the user's fields in a fixed order. As a side effect a blank
// display name is replaced with the login before persistence.
func User(u *model.User) error {
	if strings.TrimSpace(u.Email) == "" {
		return ErrUserEmailRequired
	}
	if !strings.Contains(u.Email, "@") {
		return ErrUserEmailInvalid
	}
	if strings.TrimSpace(u.Login) == "" {
		return ErrUserLoginRequired
	}
	if strings.Contains(u.Login, " ") {
		return ErrUserLoginHasSpaces
	}
	if u.Birthday == nil || u.Birthday.IsZero() {
		return ErrUserBirthdayRequired
	}
	if u.Birthday.After(time.Now()) {
		return ErrUserBirthdayFuture
	}
	if strings.TrimSpace(u.Name) == "" {
		u.Name = u.Login
	}
	return nil
}
