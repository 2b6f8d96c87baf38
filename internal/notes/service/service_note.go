package service

import (
	"context"
	"fmt"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/notes/models"
	"github.com/avstanoeva/movienotes/internal/notes/store"
)

const maxNoteTextLength = 100

type noteService struct {
	noteRepository store.NoteRepository
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService over the given repositories.
func NewNoteService(noteRepository store.NoteRepository, userRepository store.UserRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// validateNoteFields checks field rules in a fixed order; the first
// violated rule wins. Shared by Add and Update.
func validateNoteFields(text string, priority models.Priority, tag models.Tag) error {
	if text == "" {
		return fmt.Errorf("%w: text must not be empty", ErrInvalidNoteData)
	}

	if !priority.Valid() {
		return fmt.Errorf("%w: unknown priority %d", ErrInvalidNoteData, priority)
	}

	if !tag.Valid() {
		return fmt.Errorf("%w: unknown tag %d", ErrInvalidNoteData, tag)
	}

	if len(text) > maxNoteTextLength {
		return fmt.Errorf("%w: text must not exceed %d characters", ErrInvalidNoteData, maxNoteTextLength)
	}

	return nil
}

func (s *noteService) AddNote(ctx context.Context, dto models.AddNoteDTO) (models.NoteDTO, error) {
	log := logger.FromContext(ctx)

	owner, err := s.userRepository.GetByID(ctx, dto.UserID)
	if err != nil {
		log.Err(err).Int64("userId", dto.UserID).Msg("owner lookup failed")
		return models.NoteDTO{}, fmt.Errorf("owner lookup failed: %w", err)
	}
	if owner == nil {
		log.Error().Int64("userId", dto.UserID).Msg("note owner not found")
		return models.NoteDTO{}, fmt.Errorf("%w: id=%d", ErrOwnerNotFound, dto.UserID)
	}

	if err := validateNoteFields(dto.Text, dto.Priority, dto.Tag); err != nil {
		log.Error().Err(err).Msg("note validation failed")
		return models.NoteDTO{}, err
	}

	note := models.NewNoteFromAddDTO(dto)
	if err := s.noteRepository.Add(ctx, note); err != nil {
		log.Err(err).Msg("note creation ended with error")
		return models.NoteDTO{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	note.User = owner
	return note.ToDTO(), nil
}

func (s *noteService) GetNoteByID(ctx context.Context, id int64) (models.NoteDTO, error) {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return models.NoteDTO{}, fmt.Errorf("%w: id must be positive", ErrInvalidNoteData)
	}

	note, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("note lookup failed")
		return models.NoteDTO{}, fmt.Errorf("note lookup failed: %w", err)
	}
	if note == nil {
		return models.NoteDTO{}, fmt.Errorf("%w: id=%d", ErrNoteNotFound, id)
	}

	return note.ToDTO(), nil
}

func (s *noteService) GetAllNotes(ctx context.Context, ownerUserID int64) ([]models.NoteDTO, error) {
	log := logger.FromContext(ctx)

	all, err := s.noteRepository.GetAll(ctx)
	if err != nil {
		log.Err(err).Int64("ownerUserId", ownerUserID).Msg("note listing failed")
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	var dtos []models.NoteDTO
	for i := range all {
		if all[i].UserID == ownerUserID {
			dtos = append(dtos, all[i].ToDTO())
		}
	}

	if len(dtos) == 0 {
		return nil, fmt.Errorf("%w: no notes for user %d", ErrNoteNotFound, ownerUserID)
	}

	return dtos, nil
}

func (s *noteService) UpdateNote(ctx context.Context, dto models.UpdateNoteDTO) (models.NoteDTO, error) {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetByID(ctx, dto.ID)
	if err != nil {
		log.Err(err).Int64("id", dto.ID).Msg("note lookup failed")
		return models.NoteDTO{}, fmt.Errorf("note lookup failed: %w", err)
	}
	if note == nil {
		return models.NoteDTO{}, fmt.Errorf("%w: id=%d", ErrNoteNotFound, dto.ID)
	}

	owner, err := s.userRepository.GetByID(ctx, dto.UserID)
	if err != nil {
		log.Err(err).Int64("userId", dto.UserID).Msg("owner lookup failed")
		return models.NoteDTO{}, fmt.Errorf("owner lookup failed: %w", err)
	}
	if owner == nil {
		return models.NoteDTO{}, fmt.Errorf("%w: id=%d", ErrOwnerNotFound, dto.UserID)
	}

	if err := validateNoteFields(dto.Text, dto.Priority, dto.Tag); err != nil {
		log.Error().Err(err).Msg("note validation failed")
		return models.NoteDTO{}, err
	}

	note.ApplyUpdate(dto, owner)
	if err := s.noteRepository.Update(ctx, note); err != nil {
		log.Err(err).Int64("id", note.ID).Msg("note update ended with error")
		return models.NoteDTO{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return note.ToDTO(), nil
}

func (s *noteService) DeleteNote(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidNoteData)
	}

	note, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("note lookup failed")
		return fmt.Errorf("note lookup failed: %w", err)
	}
	if note == nil {
		return fmt.Errorf("%w: id=%d", ErrNoteNotFound, id)
	}

	if err := s.noteRepository.Delete(ctx, note); err != nil {
		log.Err(err).Int64("id", id).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
