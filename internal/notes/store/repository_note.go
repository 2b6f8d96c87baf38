package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/notes/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It works against both the PostgreSQL and the SQLite handle; the DB
// carries the dialect differences. Reads join the owning user so that
// mapping can compute the owner display name without a second query.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the given
// database handle.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// noteColumns lists the joined column set scanned by note reads.
var noteColumns = []string{
	"n.id", "n.text", "n.priority", "n.tag", "n.user_id",
	"u.id", "u.username", "u.first_name", "u.last_name", "u.age",
}

func scanNoteWithOwner(scanner interface{ Scan(...any) error }) (models.Note, error) {
	var n models.Note
	var owner models.User

	err := scanner.Scan(
		&n.ID, &n.Text, &n.Priority, &n.Tag, &n.UserID,
		&owner.ID, &owner.Username, &owner.FirstName, &owner.LastName, &owner.Age,
	)
	if err != nil {
		return models.Note{}, err
	}

	n.User = &owner
	return n, nil
}

func (r *noteRepository) Add(ctx context.Context, note *models.Note) error {
	log := logger.FromContext(ctx)

	insert := r.db.builder.Insert(note.TableName()).
		Columns("text", "priority", "tag", "user_id").
		Values(note.Text, note.Priority, note.Tag, note.UserID)

	if r.db.supportsReturning {
		query, args, err := insert.Suffix("RETURNING id").ToSql()
		if err != nil {
			log.Err(err).Str("func", "*noteRepository.Add").Msg("error building insert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&note.ID); err != nil {
			log.Err(err).Str("func", "*noteRepository.Add").Msg("error inserting note")
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		return nil
	}

	query, args, err := insert.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Add").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Add").Msg("error inserting note")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	note.ID = id

	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(noteColumns...).
		From(models.Note{}.TableName() + " n").
		Join("users u ON u.id = n.user_id").
		Where("n.id = ?", id).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetByID").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := scanNoteWithOwner(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", "*noteRepository.GetByID").Msg("error scanning note row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &n, nil
}

func (r *noteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(noteColumns...).
		From(models.Note{}.TableName() + " n").
		Join("users u ON u.id = n.user_id").
		OrderBy("n.id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetAll").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetAll").Msg("error querying notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		n, err := scanNoteWithOwner(rows)
		if err != nil {
			log.Err(err).Str("func", "*noteRepository.GetAll").Msg("error scanning note rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *noteRepository) Update(ctx context.Context, note *models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Update(note.TableName()).
		Set("text", note.Text).
		Set("priority", note.Priority).
		Set("tag", note.Tag).
		Set("user_id", note.UserID).
		Where("id = ?", note.ID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Update").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*noteRepository.Update").Msg("error updating note")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *noteRepository) Delete(ctx context.Context, note *models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Delete(note.TableName()).
		Where("id = ?", note.ID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("error deleting note")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
