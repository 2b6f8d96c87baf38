package models

import "fmt"

// User is an account in the movie catalog. Password always holds the
// hashed credential; plaintext never reaches this struct.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`

	// Password is the hex-encoded digest of the user's password.
	// Never serialized.
	Password string `json:"-"`

	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	// FavoriteGenre is the movie-app-specific profile attribute.
	FavoriteGenre Genre `json:"favoriteGenre"`
}

// FullName joins first and last name with a single space. Both parts may
// be empty, in which case the result is exactly " "; display code and
// token claims depend on this joining rule staying as-is.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// TableName returns the database table backing this model.
func (User) TableName() string {
	return "users"
}
