package models

// ToDTO converts a persisted note into its transfer shape. The owner
// display name is only computed when the owner relation was loaded.
func (n *Note) ToDTO() NoteDTO {
	dto := NoteDTO{
		Text:     n.Text,
		Priority: n.Priority,
		Tag:      n.Tag,
	}

	if n.User != nil {
		dto.OwnerFullName = n.User.FullName()
	}

	return dto
}

// NewNoteFromAddDTO builds a fresh note entity from an add request.
// The ID stays unset; the repository assigns it on Add.
func NewNoteFromAddDTO(dto AddNoteDTO) *Note {
	return &Note{
		Text:     dto.Text,
		Priority: dto.Priority,
		Tag:      dto.Tag,
		UserID:   dto.UserID,
	}
}

// ApplyUpdate overwrites all mutable fields of n from the update request
// and rebinds the owner relation to the already-resolved owner.
func (n *Note) ApplyUpdate(dto UpdateNoteDTO, owner *User) {
	n.Text = dto.Text
	n.Priority = dto.Priority
	n.Tag = dto.Tag
	n.UserID = dto.UserID
	n.User = owner
}

// NewUserFromRegisterDTO builds a user entity from a registration request
// and the already-hashed password.
func NewUserFromRegisterDTO(dto RegisterUserDTO, passwordHash string) *User {
	return &User{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Username:  dto.Username,
		Password:  passwordHash,
		Age:       dto.Age,
	}
}

// ApplyDetailsUpdate copies only the supplied fields onto the user.
// Unsupplied string fields keep their stored values; the age is only
// overwritten when supplied within its valid bounds.
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

	if dto.Age >= 12 && dto.Age <= 100 {
		u.Age = dto.Age
	}
}
