package store

import (
	"context"
	"strings"
	"sync"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/notes/models"
)

// memoryDB is the shared state behind the in-memory backend. Users and
// notes live in the same struct so that note reads can join the owner
// under a single lock.
//
// Entities are copied on the way in and out; callers never share memory
// with the store.
type memoryDB struct {
	mu sync.RWMutex

	users      map[int64]models.User
	notes      map[int64]models.Note
	nextUserID int64
	nextNoteID int64
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		users:      make(map[int64]models.User),
		notes:      make(map[int64]models.Note),
		nextUserID: 1,
		nextNoteID: 1,
	}
}

// joinOwnerLocked attaches a copy of the owning user to the note.
// Caller holds at least a read lock.
func (db *memoryDB) joinOwnerLocked(n models.Note) models.Note {
	if owner, ok := db.users[n.UserID]; ok {
		n.User = &owner
	}
	return n
}

type memoryUserRepository struct {
	logger *logger.Logger
	db     *memoryDB
}

// NewMemoryUserRepository constructs a [UserRepository] over the given
// in-memory state.
func NewMemoryUserRepository(db *memoryDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{db: db, logger: logger}
}

func (r *memoryUserRepository) Add(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.users {
		if existing.Username == user.Username {
			return ErrUsernameTaken
		}
	}

	user.ID = r.db.nextUserID
	r.db.nextUserID++
	r.db.users[user.ID] = *user

	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}

	return &u, nil
}

func (r *memoryUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Username == username {
			return &u, nil
		}
	}

	return nil, nil
}

func (r *memoryUserRepository) Login(_ context.Context, username, passwordHash string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if strings.EqualFold(u.Username, username) && u.Password == passwordHash {
			return &u, nil
		}
	}

	return nil, nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for id, existing := range r.db.users {
		if id != user.ID && existing.Username == user.Username {
			return ErrUsernameTaken
		}
	}

	if _, ok := r.db.users[user.ID]; ok {
		r.db.users[user.ID] = *user
	}

	return nil
}

func (r *memoryUserRepository) SavePassword(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if existing, ok := r.db.users[user.ID]; ok {
		existing.Password = user.Password
		r.db.users[user.ID] = existing
	}

	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.users, user.ID)

	return nil
}

type memoryNoteRepository struct {
	logger *logger.Logger
	db     *memoryDB
}

// NewMemoryNoteRepository constructs a [NoteRepository] over the given
// in-memory state.
func NewMemoryNoteRepository(db *memoryDB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating in-memory note repository")
	return &memoryNoteRepository{db: db, logger: logger}
}

func (r *memoryNoteRepository) Add(_ context.Context, note *models.Note) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	note.ID = r.db.nextNoteID
	r.db.nextNoteID++

	stored := *note
	stored.User = nil
	r.db.notes[stored.ID] = stored

	return nil
}

func (r *memoryNoteRepository) GetByID(_ context.Context, id int64) (*models.Note, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	n, ok := r.db.notes[id]
	if !ok {
		return nil, nil
	}

	n = r.db.joinOwnerLocked(n)
	return &n, nil
}

func (r *memoryNoteRepository) GetAll(_ context.Context) ([]models.Note, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var notes []models.Note
	for _, n := range r.db.notes {
		notes = append(notes, r.db.joinOwnerLocked(n))
	}

	return notes, nil
}

func (r *memoryNoteRepository) Update(_ context.Context, note *models.Note) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.notes[note.ID]; ok {
		stored := *note
		stored.User = nil
		r.db.notes[stored.ID] = stored
	}

	return nil
}

func (r *memoryNoteRepository) Delete(_ context.Context, note *models.Note) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.notes, note.ID)

	return nil
}
