package models

// ToDTO converts a persisted movie into its transfer shape. The owner
// display name is only computed when the owner relation was loaded.
func (m *Movie) ToDTO() MovieDTO {
	dto := MovieDTO{
		Title:       m.Title,
		Description: m.Description,
		Year:        m.Year,
		Genre:       m.Genre,
	}

	if m.User != nil {
		dto.OwnerFullName = m.User.FullName()
	}

	return dto
}

// NewMovieFromAddDTO builds a fresh movie entity from an add request.
// The ID stays unset; the repository assigns it on Add.
func NewMovieFromAddDTO(dto AddMovieDTO) *Movie {
	return &Movie{
		Title:       dto.Title,
		Description: dto.Description,
		Year:        dto.Year,
		Genre:       dto.Genre,
		UserID:      dto.UserID,
	}
}

// ApplyUpdate overwrites all mutable fields of m from the update request
// and rebinds the owner relation to the already-resolved owner.
func (m *Movie) ApplyUpdate(dto UpdateMovieDTO, owner *User) {
	m.Title = dto.Title
	m.Description = dto.Description
	m.Year = dto.Year
	m.Genre = dto.Genre
	m.UserID = dto.UserID
	m.User = owner
}

// NewUserFromRegisterDTO builds a user entity from a registration request
// and the already-hashed password.
func NewUserFromRegisterDTO(dto RegisterUserDTO, passwordHash string) *User {
	return &User{
		FirstName:     dto.FirstName,
		LastName:      dto.LastName,
		Username:      dto.Username,
		Password:      passwordHash,
		FavoriteGenre: dto.FavoriteGenre,
	}
}

// ApplyDetailsUpdate copies only the supplied fields onto the user.
// Unsupplied string fields keep their stored values; the favorite genre
// is only overwritten when supplied with a valid member of the genre set.
func (u *User) ApplyDetailsUpdate(dto UpdateUserDetailsDTO) {
	if dto.FirstName != "" {
		u.FirstName = dto.FirstName
	}

	if dto.LastName != "" {
		u.LastName = dto.LastName
	}

	if dto.Username != "" {
		u.Username = dto.Username
	}

	if dto.FavoriteGenre != nil && dto.FavoriteGenre.Valid() {
		u.FavoriteGenre = *dto.FavoriteGenre
	}
}
