package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/notes/models"
	"github.com/avstanoeva/movienotes/internal/utils"
)

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.AddNoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.AddNote(ctx, dto)
	if err != nil {
		log.Err(err).Msg("note creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, note, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric note id")
		http.Error(w, "note id must be a number", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.GetNoteByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("note lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, note, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) getAllNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetCallerFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.GetAllNotes(ctx, caller.UserID)
	if err != nil {
		log.Err(err).Int64("userId", caller.UserID).Msg("note listing failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, notes, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var dto models.UpdateNoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(ctx, dto)
	if err != nil {
		log.Err(err).Int64("id", dto.ID).Msg("note update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, note, http.StatusOK); err != nil {
		log.Err(err).Msg("writing response failed")
	}
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric note id")
		http.Error(w, "note id must be a number", http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("note deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
