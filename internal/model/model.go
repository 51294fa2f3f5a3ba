package model

// Film is a catalog entry with its genre tags and MPA rating attached.
type Film struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ReleaseDate *Date   `json:"releaseDate"`
	Duration    *int64  `json:"duration"`
	Genres      []Genre `json:"genres"`
	Mpa         *Rating `json:"mpa"`
}

// User is an account that can like films and befriend other users.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday *Date  `json:"birthday"`
}

// Genre is read-only reference data seeded at startup.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Rating is an MPA content rating, read-only reference data.
type Rating struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
