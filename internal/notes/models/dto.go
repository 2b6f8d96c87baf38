package models

// NoteDTO is the read shape returned to API consumers. OwnerFullName is
// a display field computed from the owner relation when it was loaded.
type NoteDTO struct {
	Text          string   `json:"text"`
	Priority      Priority `json:"priority"`
	Tag           Tag      `json:"tag"`
	OwnerFullName string   `json:"ownerFullName,omitempty"`
}

// AddNoteDTO carries the fields for creating a note.
type AddNoteDTO struct {
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
	Tag      Tag      `json:"tag"`
	UserID   int64    `json:"userId"`
}

// UpdateNoteDTO carries a full replacement of a note's mutable fields,
// including the owning user.
type UpdateNoteDTO struct {
	ID       int64    `json:"id"`
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
	Tag      Tag      `json:"tag"`
	UserID   int64    `json:"userId"`
}

// RegisterUserDTO carries a registration request.
type RegisterUserDTO struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Age             int    `json:"age"`
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
// left empty keep their stored values; Age zero means "not supplied".
type UpdateUserDetailsDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Age       int    `json:"age"`
}

// Empty reports whether no field of the update was supplied at all.
func (d UpdateUserDetailsDTO) Empty() bool {
	return d.FirstName == "" && d.LastName == "" && d.Username == "" && d.Age == 0
}
