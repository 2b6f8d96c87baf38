package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/notes/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]
// for the note app. It works against both the PostgreSQL and the SQLite
// handle; the DB carries the dialect differences.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the given
// database handle.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

var userColumns = []string{"id", "username", "password", "first_name", "last_name", "age"}

func scanUser(scanner interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := scanner.Scan(&u.ID, &u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Age)
	return u, err
}

// Add persists a new user. A unique violation on the username column is
// surfaced as [ErrUsernameTaken]; the service layer's pre-insert check is
// the primary guard, this is the race backstop.
func (r *userRepository) Add(ctx context.Context, user *models.User) error {
	log := logger.FromContext(ctx)

	insert := r.db.builder.Insert(user.TableName()).
		Columns("username", "password", "first_name", "last_name", "age").
		Values(user.Username, user.Password, user.FirstName, user.LastName, user.Age)

	if r.db.supportsReturning {
		query, args, err := insert.Suffix("RETURNING id").ToSql()
		if err != nil {
			log.Err(err).Str("func", "*userRepository.Add").Msg("error building insert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
			log.Err(err).Str("func", "*userRepository.Add").Msg("error inserting user")
			if r.db.isUniqueViolation(err) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		return nil
	}

	query, args, err := insert.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Add").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Add").Msg("error inserting user")
		if r.db.isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	user.ID = id

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(userColumns...).
		From(models.User{}.TableName()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetByID").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", "*userRepository.GetByID").Msg("error scanning user row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(userColumns...).
		From(models.User{}.TableName()).
		Where("username = ?", username).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetByUsername").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", "*userRepository.GetByUsername").Msg("error scanning user row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &u, nil
}

// Login matches the username case-insensitively and the stored password
// hash exactly. Either mismatch yields (nil, nil).
func (r *userRepository) Login(ctx context.Context, username, passwordHash string) (*models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(userColumns...).
		From(models.User{}.TableName()).
		Where("LOWER(username) = LOWER(?)", username).
		Where("password = ?", passwordHash).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Login").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", "*userRepository.Login").Msg("error scanning user row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Update(user.TableName()).
		Set("username", user.Username).
		Set("password", user.Password).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("age", user.Age).
		Where("id = ?", user.ID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("error updating user")
		if r.db.isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// SavePassword persists only the password column, used by the password
// change flow.
func (r *userRepository) SavePassword(ctx context.Context, user *models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Update(user.TableName()).
		Set("password", user.Password).
		Where("id = ?", user.ID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SavePassword").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.SavePassword").Msg("error updating password")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, user *models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Delete(user.TableName()).
		Where("id = ?", user.ID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
