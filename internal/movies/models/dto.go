package models

// MovieDTO is the read shape returned to API consumers. OwnerFullName is
// a display field computed from the owner relation when it was loaded.
type MovieDTO struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Year          int    `json:"year"`
	Genre         Genre  `json:"genre"`
	OwnerFullName string `json:"ownerFullName,omitempty"`
}

// AddMovieDTO carries the fields for creating a movie.
type AddMovieDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	Genre       Genre  `json:"genre"`
	UserID      int64  `json:"userId"`
}

// UpdateMovieDTO carries a full replacement of a movie's mutable fields,
// including the owning user.
type UpdateMovieDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	Genre       Genre  `json:"genre"`
	UserID      int64  `json:"userId"`
}

// RegisterUserDTO carries a registration request.
type RegisterUserDTO struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FavoriteGenre   Genre  `json:"favoriteGenre"`
}

// LoginUserDTO carries a login request.
type LoginUserDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordDTO carries a password change request.
type ChangePasswordDTO struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateUserDetailsDTO carries a partial profile update. String fields
// left empty keep their stored values; FavoriteGenre is a pointer so that
// "not supplied" is distinguishable from GenreAction (zero).
type UpdateUserDetailsDTO struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Username      string `json:"username"`
	FavoriteGenre *Genre `json:"favoriteGenre"`
}

// Empty reports whether no field of the update was supplied at all.
func (d UpdateUserDetailsDTO) Empty() bool {
	return d.FirstName == "" && d.LastName == "" && d.Username == "" && d.FavoriteGenre == nil
}
