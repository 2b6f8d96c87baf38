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

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.RegisterUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.RegisterUser(ctx, dto)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.LoginUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.UserService.LoginUser(ctx, dto)
	if err != nil {
		log.Err(err).Str("username", dto.Username).Msg("user login failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(token)); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.ChangePassword(ctx, dto); err != nil {
		log.Err(err).Str("username", dto.Username).Msg("password change failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric user id")
		http.Error(w, "user id must be a number", http.StatusBadRequest)
		return
	}

	caller, ok := utils.GetCallerFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, id, caller); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) updateUserDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.UpdateUserDetailsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	caller, ok := utils.GetCallerFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.UpdateUserDetails(ctx, dto, caller.UserID)
	if err != nil {
		log.Err(err).Int64("userId", caller.UserID).Msg("user details update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}
