package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/movies/models"
)

// movieRepository is the PostgreSQL-backed implementation of
// [MovieRepository]. Reads join the owning user so that mapping can
// compute the owner display name without a second query.
type movieRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMovieRepository constructs a [MovieRepository] backed by the given
// database handle.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:     db,
		logger: logger,
	}
}

// movieColumns lists the joined column set scanned by movie reads.
var movieColumns = []string{
	"m.id", "m.title", "m.description", "m.year", "m.genre", "m.user_id",
	"u.id", "u.username", "u.first_name", "u.last_name", "u.favorite_genre",
}

func scanMovieWithOwner(scanner interface{ Scan(...any) error }) (models.Movie, error) {
	var m models.Movie
	var owner models.User

	err := scanner.Scan(
		&m.ID, &m.Title, &m.Description, &m.Year, &m.Genre, &m.UserID,
		&owner.ID, &owner.Username, &owner.FirstName, &owner.LastName, &owner.FavoriteGenre,
	)
	if err != nil {
		return models.Movie{}, err
	}

	m.User = &owner
	return m, nil
}

func (r *movieRepository) Add(ctx context.Context, movie *models.Movie) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(movie.TableName()).
		Columns("title", "description", "year", "genre", "user_id").
		Values(movie.Title, movie.Description, movie.Year, movie.Genre, movie.UserID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.Add").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&movie.ID); err != nil {
		log.Err(err).Str("func", "*movieRepository.Add").Msg("error inserting movie")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(movieColumns...).
		From(models.Movie{}.TableName() + " m").
		Join("users u ON u.id = m.user_id").
		Where("m.id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.GetByID").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	m, err := scanMovieWithOwner(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", "*movieRepository.GetByID").Msg("error scanning movie row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &m, nil
}

func (r *movieRepository) GetAll(ctx context.Context) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(movieColumns...).
		From(models.Movie{}.TableName() + " m").
		Join("users u ON u.id = m.user_id").
		OrderBy("m.id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.GetAll").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.GetAll").Msg("error querying movies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		m, err := scanMovieWithOwner(rows)
		if err != nil {
			log.Err(err).Str("func", "*movieRepository.GetAll").Msg("error scanning movie rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(movie.TableName()).
		Set("title", movie.Title).
		Set("description", movie.Description).
		Set("year", movie.Year).
		Set("genre", movie.Genre).
		Set("user_id", movie.UserID).
		Where("id = ?", movie.ID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.Update").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*movieRepository.Update").Msg("error updating movie")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, movie *models.Movie) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(movie.TableName()).
		Where("id = ?", movie.ID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*movieRepository.Delete").Msg("error deleting movie")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
