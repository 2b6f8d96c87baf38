package store

import (
	"context"
	"strings"
	"sync"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/movies/models"
)

// memoryDB is the shared state behind the in-memory backend. Users and
// movies live in the same struct so that movie reads can join the owner
// under a single lock.
//
// Entities are copied on the way in and out; callers never share memory
// with the store.
type memoryDB struct {
	mu sync.RWMutex

	users      map[int64]models.User
	movies     map[int64]models.Movie
	nextUserID int64
	nextFilmID int64
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		users:      make(map[int64]models.User),
		movies:     make(map[int64]models.Movie),
		nextUserID: 1,
		nextFilmID: 1,
	}
}

// joinOwnerLocked attaches a copy of the owning user to the movie.
// Caller holds at least a read lock.
func (db *memoryDB) joinOwnerLocked(m models.Movie) models.Movie {
	if owner, ok := db.users[m.UserID]; ok {
		m.User = &owner
	}
	return m
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

type memoryMovieRepository struct {
	logger *logger.Logger
	db     *memoryDB
}

// NewMemoryMovieRepository constructs a [MovieRepository] over the given
// in-memory state.
func NewMemoryMovieRepository(db *memoryDB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating in-memory movie repository")
	return &memoryMovieRepository{db: db, logger: logger}
}

func (r *memoryMovieRepository) Add(_ context.Context, movie *models.Movie) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	movie.ID = r.db.nextFilmID
	r.db.nextFilmID++

	stored := *movie
	stored.User = nil
	r.db.movies[stored.ID] = stored

	return nil
}

func (r *memoryMovieRepository) GetByID(_ context.Context, id int64) (*models.Movie, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	m, ok := r.db.movies[id]
	if !ok {
		return nil, nil
	}

	m = r.db.joinOwnerLocked(m)
	return &m, nil
}

func (r *memoryMovieRepository) GetAll(_ context.Context) ([]models.Movie, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var movies []models.Movie
	for _, m := range r.db.movies {
		movies = append(movies, r.db.joinOwnerLocked(m))
	}

	return movies, nil
}

func (r *memoryMovieRepository) Update(_ context.Context, movie *models.Movie) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.movies[movie.ID]; ok {
		stored := *movie
		stored.User = nil
		r.db.movies[stored.ID] = stored
	}

	return nil
}

func (r *memoryMovieRepository) Delete(_ context.Context, movie *models.Movie) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.movies, movie.ID)

	return nil
}
