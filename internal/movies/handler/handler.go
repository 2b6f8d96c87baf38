// Package handler exposes the movie catalog over HTTP: chi routes,
// request decoding, and the mapping of service failures to statuses.
package handler

import (
	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/movies/service"
	"github.com/avstanoeva/movienotes/internal/utils"
)

type Handler struct {
	services *service.Services
	tokens   *utils.TokenManager

	logger *logger.Logger
}

func NewHandler(services *service.Services, tokens *utils.TokenManager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tokens:   tokens,
		logger:   logger,
	}
}
