package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/movies/models"
	"github.com/avstanoeva/movienotes/internal/movies/store"
)

const maxMovieDescriptionLength = 250

// earliestFilterYear bounds the year filter criterion. Add and Update
// only require Year > 0; the filter is stricter.
const earliestFilterYear = 1900

type movieService struct {
	movieRepository store.MovieRepository
	userRepository  store.UserRepository
	logger          *logger.Logger
}

// NewMovieService constructs a MovieService over the given repositories.
func NewMovieService(movieRepository store.MovieRepository, userRepository store.UserRepository, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		userRepository:  userRepository,
		logger:          logger,
	}
}

// validateMovieFields checks field rules in a fixed order; the first
// violated rule wins. Shared by Add and Update.
func validateMovieFields(title, description string, year int, genre models.Genre) error {
	if title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidMovieData)
	}

	if year <= 0 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidMovieData)
	}

	if !genre.Valid() {
		return fmt.Errorf("%w: unknown genre %d", ErrInvalidMovieData, genre)
	}

	if len(description) > maxMovieDescriptionLength {
		return fmt.Errorf("%w: description must not exceed %d characters", ErrInvalidMovieData, maxMovieDescriptionLength)
	}

	return nil
}

func (s *movieService) AddMovie(ctx context.Context, dto models.AddMovieDTO) (models.MovieDTO, error) {
	log := logger.FromContext(ctx)

	owner, err := s.userRepository.GetByID(ctx, dto.UserID)
	if err != nil {
		log.Err(err).Int64("userId", dto.UserID).Msg("owner lookup failed")
		return models.MovieDTO{}, fmt.Errorf("owner lookup failed: %w", err)
	}
	if owner == nil {
		log.Error().Int64("userId", dto.UserID).Msg("movie owner not found")
		return models.MovieDTO{}, fmt.Errorf("%w: id=%d", ErrOwnerNotFound, dto.UserID)
	}

	if err := validateMovieFields(dto.Title, dto.Description, dto.Year, dto.Genre); err != nil {
		log.Error().Err(err).Msg("movie validation failed")
		return models.MovieDTO{}, err
	}

	movie := models.NewMovieFromAddDTO(dto)
	if err := s.movieRepository.Add(ctx, movie); err != nil {
		log.Err(err).Msg("movie creation ended with error")
		return models.MovieDTO{}, fmt.Errorf("movie creation ended with error: %w", err)
	}

	movie.User = owner
	return movie.ToDTO(), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (models.MovieDTO, error) {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return models.MovieDTO{}, fmt.Errorf("%w: id must be positive", ErrInvalidMovieData)
	}

	movie, err := s.movieRepository.GetByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("movie lookup failed")
		return models.MovieDTO{}, fmt.Errorf("movie lookup failed: %w", err)
	}
	if movie == nil {
		return models.MovieDTO{}, fmt.Errorf("%w: id=%d", ErrMovieNotFound, id)
	}

	return movie.ToDTO(), nil
}

// getOwnedMovies loads all movies and keeps the ones owned by the given
// user, in repository iteration order.
func (s *movieService) getOwnedMovies(ctx context.Context, ownerUserID int64) ([]models.Movie, error) {
	all, err := s.movieRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("movie listing failed: %w", err)
	}

	var owned []models.Movie
	for _, m := range all {
		if m.UserID == ownerUserID {
			owned = append(owned, m)
		}
	}

	return owned, nil
}

func (s *movieService) GetAllMovies(ctx context.Context, ownerUserID int64) ([]models.MovieDTO, error) {
	log := logger.FromContext(ctx)

	owned, err := s.getOwnedMovies(ctx, ownerUserID)
	if err != nil {
		log.Err(err).Int64("ownerUserId", ownerUserID).Msg("movie listing failed")
		return nil, err
	}

	if len(owned) == 0 {
		return nil, fmt.Errorf("%w: no movies for user %d", ErrMovieNotFound, ownerUserID)
	}

	dtos := make([]models.MovieDTO, 0, len(owned))
	for i := range owned {
		dtos = append(dtos, owned[i].ToDTO())
	}

	return dtos, nil
}

func (s *movieService) FilterMovies(ctx context.Context, genre *models.Genre, year *int, ownerUserID int64) ([]models.MovieDTO, error) {
	log := logger.FromContext(ctx)

	if genre == nil && year == nil {
		return nil, fmt.Errorf("%w: at least one of genre or year must be supplied", ErrInvalidMovieData)
	}
	if genre != nil && !genre.Valid() {
		return nil, fmt.Errorf("%w: unknown genre %d", ErrInvalidMovieData, *genre)
	}
	if year != nil && (*year < earliestFilterYear || *year > time.Now().Year()) {
		return nil, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidMovieData, earliestFilterYear, time.Now().Year())
	}

	owned, err := s.getOwnedMovies(ctx, ownerUserID)
	if err != nil {
		log.Err(err).Int64("ownerUserId", ownerUserID).Msg("movie listing failed")
		return nil, err
	}

	var dtos []models.MovieDTO
	for i := range owned {
		if genre != nil && owned[i].Genre != *genre {
			continue
		}
		if year != nil && owned[i].Year != *year {
			continue
		}
		dtos = append(dtos, owned[i].ToDTO())
	}

	if len(dtos) == 0 {
		return nil, fmt.Errorf("%w: no movies match the filter", ErrMovieNotFound)
	}

	return dtos, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, dto models.UpdateMovieDTO) (models.MovieDTO, error) {
	log := logger.FromContext(ctx)

	movie, err := s.movieRepository.GetByID(ctx, dto.ID)
	if err != nil {
		log.Err(err).Int64("id", dto.ID).Msg("movie lookup failed")
		return models.MovieDTO{}, fmt.Errorf("movie lookup failed: %w", err)
	}
	if movie == nil {
		return models.MovieDTO{}, fmt.Errorf("%w: id=%d", ErrMovieNotFound, dto.ID)
	}

	owner, err := s.userRepository.GetByID(ctx, dto.UserID)
	if err != nil {
		log.Err(err).Int64("userId", dto.UserID).Msg("owner lookup failed")
		return models.MovieDTO{}, fmt.Errorf("owner lookup failed: %w", err)
	}
	if owner == nil {
		return models.MovieDTO{}, fmt.Errorf("%w: id=%d", ErrOwnerNotFound, dto.UserID)
	}

	if err := validateMovieFields(dto.Title, dto.Description, dto.Year, dto.Genre); err != nil {
		log.Error().Err(err).Msg("movie validation failed")
		return models.MovieDTO{}, err
	}

	movie.ApplyUpdate(dto, owner)
	if err := s.movieRepository.Update(ctx, movie); err != nil {
		log.Err(err).Int64("id", movie.ID).Msg("movie update ended with error")
		return models.MovieDTO{}, fmt.Errorf("movie update ended with error: %w", err)
	}

	return movie.ToDTO(), nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidMovieData)
	}

	movie, err := s.movieRepository.GetByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("movie lookup failed")
		return fmt.Errorf("movie lookup failed: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("%w: id=%d", ErrMovieNotFound, id)
	}

	if err := s.movieRepository.Delete(ctx, movie); err != nil {
		log.Err(err).Int64("id", id).Msg("movie deletion ended with error")
		return fmt.Errorf("movie deletion ended with error: %w", err)
	}

	return nil
}
