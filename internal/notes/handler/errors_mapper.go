package handler

import (
	"errors"
	"net/http"

	"github.com/avstanoeva/movienotes/internal/notes/service"
	"github.com/avstanoeva/movienotes/internal/notes/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidNoteData: http.StatusBadRequest,
	service.ErrInvalidUserData: http.StatusBadRequest,
	service.ErrNoteNotFound:    http.StatusNotFound,
	service.ErrOwnerNotFound:   http.StatusNotFound,
	service.ErrUserNotFound:    http.StatusNotFound,

	store.ErrUsernameTaken: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
