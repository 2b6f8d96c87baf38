package service

import (
	"context"

	"github.com/avstanoeva/movienotes/internal/notes/models"
	"github.com/avstanoeva/movienotes/internal/utils"
)

// NoteService holds the business rules of the note app: field
// validation, owner resolution, and entity/DTO mapping. Persistence is
// delegated to the repositories.
type NoteService interface {
	AddNote(ctx context.Context, dto models.AddNoteDTO) (models.NoteDTO, error)
	GetNoteByID(ctx context.Context, id int64) (models.NoteDTO, error)

	// GetAllNotes returns the caller's notes. An empty result is an
	// ErrNoteNotFound failure, not an empty list.
	GetAllNotes(ctx context.Context, ownerUserID int64) ([]models.NoteDTO, error)

	UpdateNote(ctx context.Context, dto models.UpdateNoteDTO) (models.NoteDTO, error)
	DeleteNote(ctx context.Context, id int64) error
}

// UserService handles account lifecycle and credentials for the note app.
type UserService interface {
	RegisterUser(ctx context.Context, dto models.RegisterUserDTO) (*models.User, error)

	// LoginUser verifies credentials and returns a signed bearer token.
	LoginUser(ctx context.Context, dto models.LoginUserDTO) (string, error)

	ChangePassword(ctx context.Context, dto models.ChangePasswordDTO) error

	// DeleteUser removes the account with the given ID. Only the account
	// owner may delete it; a mismatched caller fails with
	// ErrInvalidUserData.
	DeleteUser(ctx context.Context, id int64, caller utils.CallerIdentity) error

	// UpdateUserDetails applies the supplied profile fields to the
	// caller's own account.
	UpdateUserDetails(ctx context.Context, dto models.UpdateUserDetailsDTO, callerUserID int64) (*models.User, error)
}
