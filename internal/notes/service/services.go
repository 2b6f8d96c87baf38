// Package service implements the business rules of the note app:
// validation, ownership checks, credential handling and entity/DTO
// mapping between the HTTP layer and the repositories.
package service

import (
	"github.com/avstanoeva/movienotes/internal/config"
	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/notes/store"
)

type Services struct {
	NoteService NoteService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		NoteService: NewNoteService(storages.Notes, storages.Users, logger),
		UserService: NewUserService(storages.Users, cfg.App, logger),
	}
}
