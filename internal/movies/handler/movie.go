package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/movies/models"
	"github.com/avstanoeva/movienotes/internal/utils"
)

func (h *Handler) addMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.AddMovieDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	movie, err := h.services.MovieService.AddMovie(ctx, dto)
	if err != nil {
		log.Err(err).Msg("movie creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, movie, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric movie id")
		http.Error(w, "movie id must be a number", http.StatusBadRequest)
		return
	}

	movie, err := h.services.MovieService.GetMovieByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("movie lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, movie, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getAllMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetCallerFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	movies, err := h.services.MovieService.GetAllMovies(ctx, caller.UserID)
	if err != nil {
		log.Err(err).Int64("userId", caller.UserID).Msg("movie listing failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, movies, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) filterMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetCallerFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var genre *models.Genre
	if raw := r.URL.Query().Get("genre"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Err(err).Str("genre", raw).Msg("non-numeric genre filter")
			http.Error(w, "genre must be a number", http.StatusBadRequest)
			return
		}
		g := models.Genre(parsed)
		genre = &g
	}

	var year *int
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Err(err).Str("year", raw).Msg("non-numeric year filter")
			http.Error(w, "year must be a number", http.StatusBadRequest)
			return
		}
		year = &parsed
	}

	movies, err := h.services.MovieService.FilterMovies(ctx, genre, year, caller.UserID)
	if err != nil {
		log.Err(err).Int64("userId", caller.UserID).Msg("movie filtering failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, movies, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.UpdateMovieDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	movie, err := h.services.MovieService.UpdateMovie(ctx, dto)
	if err != nil {
		log.Err(err).Int64("id", dto.ID).Msg("movie update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, movie, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric movie id")
		http.Error(w, "movie id must be a number", http.StatusBadRequest)
		return
	}

	if err := h.services.MovieService.DeleteMovie(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("movie deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
