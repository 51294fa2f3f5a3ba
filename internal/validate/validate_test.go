package validate

import (
	"errors"
	"strings"
	"testing"
	"time"

	"filmgraph/internal/model"
)

func int64Ptr(v int64) *int64 { return &v }

func datePtr(d model.Date) *model.Date { return &d }

func validFilm() *model.Film {
	return &model.Film{
		Name:        "Blade Runner",
		Description: "A blade runner must pursue and terminate four replicants.",
		ReleaseDate: datePtr(model.NewDate(1982, time.June, 25)),
		Duration:    int64Ptr(117),
	}
}

func TestFilm(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *model.Film)
		wantErr error
	}{
		{
			name:   "valid film",
			mutate: func(f *model.Film) {},
		},
		{
			name:    "blank name",
			mutate:  func(f *model.Film) { f.Name = "   " },
			wantErr: ErrFilmNameRequired,
		},
		{
			name:    "blank description",
			mutate:  func(f *model.Film) { f.Description = "" },
			wantErr: ErrFilmDescriptionRequired,
		},
		{
			name:    "description over 200 characters",
			mutate:  func(f *model.Film) { f.Description = strings.Repeat("x", 201) },
			wantErr: ErrFilmDescriptionTooLong,
		},
		{
			name:   "description exactly 200 characters",
			mutate: func(f *model.Film) { f.Description = strings.Repeat("x", 200) },
		},
		{
			name:   "description of 200 multibyte runes",
			mutate: func(f *model.Film) { f.Description = strings.Repeat("я", 200) },
		},
		{
			name:    "missing release date",
			mutate:  func(f *model.Film) { f.ReleaseDate = nil },
			wantErr: ErrFilmReleaseDateRequired,
		},
		{
			name: "release before first screening",
			mutate: func(f *model.Film) {
				f.ReleaseDate = datePtr(model.NewDate(1895, time.December, 27))
			},
			wantErr: ErrFilmReleaseDateTooEarly,
		},
		{
			name: "release on first screening day",
			mutate: func(f *model.Film) {
				f.ReleaseDate = datePtr(model.NewDate(1895, time.December, 28))
			},
		},
		{
			name:    "missing duration",
			mutate:  func(f *model.Film) { f.Duration = nil },
			wantErr: ErrFilmDurationRequired,
		},
		{
			name:    "negative duration",
			mutate:  func(f *model.Film) { f.Duration = int64Ptr(-1) },
			wantErr: ErrFilmDurationNegative,
		},
		{
			name:   "zero duration",
			mutate: func(f *model.Film) { f.Duration = int64Ptr(0) },
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f := validFilm()
			tc.mutate(f)

			err := Film(f)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error but got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if !model.IsValidation(err) {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestFilmFirstFailureWins(t *testing.T) {
	f := &model.Film{Name: "", Description: "", Duration: int64Ptr(-5)}
	if err := Film(f); !errors.Is(err, ErrFilmNameRequired) {
		t.Fatalf("expected name check to fire first, got %v", err)
	}
}

func validUser() *model.User {
	return &model.User{
		Email:    "deckard@example.com",
		Login:    "deckard",
		Name:     "Rick Deckard",
		Birthday: datePtr(model.NewDate(1980, time.January, 6)),
	}
}

func TestUser(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *model.User)
		wantErr error
	}{
		{
			name:   "valid user",
			mutate: func(u *model.User) {},
		},
		{
			name:    "blank email",
			mutate:  func(u *model.User) { u.Email = "  " },
			wantErr: ErrUserEmailRequired,
		},
		{
			name:    "email without at sign",
			mutate:  func(u *model.User) { u.Email = "deckard.example.com" },
			wantErr: ErrUserEmailInvalid,
		},
		{
			name:    "blank login",
			mutate:  func(u *model.User) { u.Login = "" },
			wantErr: ErrUserLoginRequired,
		},
		{
			name:    "login with spaces",
			mutate:  func(u *model.User) { u.Login = "rick deckard" },
			wantErr: ErrUserLoginHasSpaces,
		},
		{
			name:    "missing birthday",
			mutate:  func(u *model.User) { u.Birthday = nil },
			wantErr: ErrUserBirthdayRequired,
		},
		{
			name: "birthday in the future",
			mutate: func(u *model.User) {
				u.Birthday = datePtr(model.DateOf(time.Now().AddDate(1, 0, 0)))
			},
			wantErr: ErrUserBirthdayFuture,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			u := validUser()
			tc.mutate(u)

			err := User(u)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error but got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestUserBlankNameFallsBackToLogin(t *testing.T) {
	u := validUser()
	u.Name = "   "

	if err := User(u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "deckard" {
		t.Fatalf("expected name to fall back to login, got %q", u.Name)
	}
}

func TestUserNamePreservedWhenPresent(t *testing.T) {
	u := validUser()

	if err := User(u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Rick Deckard" {
		t.Fatalf("expected name to be preserved, got %q", u.Name)
	}
}
