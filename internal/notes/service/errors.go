package service

import "errors"

// Sentinel errors of the note service layer. Handlers match them with
// errors.Is to pick HTTP statuses; the wrapped message carries the
// human-readable reason returned to the caller.
var (
	ErrInvalidNoteData = errors.New("invalid note data")
	ErrNoteNotFound    = errors.New("note not found")
	ErrOwnerNotFound   = errors.New("note owner not found")

	ErrInvalidUserData = errors.New("invalid user data")
	ErrUserNotFound    = errors.New("user not found")
)
