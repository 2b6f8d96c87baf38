package store

import (
	"context"
	"testing"

	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/movies/models"
)

func newMemoryRepos(t *testing.T) (UserRepository, MovieRepository) {
	t.Helper()

	db := newMemoryDB()
	l := logger.Nop()
	return NewMemoryUserRepository(db, l), NewMemoryMovieRepository(db, l)
}

func TestMemoryUser_SequentialIDs(t *testing.T) {
	users, _ := newMemoryRepos(t)
	ctx := context.Background()

	first := models.User{Username: "ripley"}
	second := models.User{Username: "dallas"}

	if err := users.Add(ctx, &first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := users.Add(ctx, &second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestMemoryUser_DuplicateUsername(t *testing.T) {
	users, _ := newMemoryRepos(t)
	ctx := context.Background()

	if err := users.Add(ctx, &models.User{Username: "ripley"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := users.Add(ctx, &models.User{Username: "ripley"}); err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestMemoryUser_UpdateKeepsOwnUsername(t *testing.T) {
	users, _ := newMemoryRepos(t)
	ctx := context.Background()

	user := models.User{Username: "ripley", FirstName: "Ellen"}
	if err := users.Add(ctx, &user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user.FirstName = "Joan"
	if err := users.Update(ctx, &user); err != nil {
		t.Fatalf("updating with own username should not conflict: %v", err)
	}

	stored, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.FirstName != "Joan" {
		t.Errorf("expected FirstName Joan, got %q", stored.FirstName)
	}
}

func TestMemoryUser_ReadsReturnCopies(t *testing.T) {
	users, _ := newMemoryRepos(t)
	ctx := context.Background()

	user := models.User{Username: "ripley", FirstName: "Ellen"}
	if err := users.Add(ctx, &user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.FirstName = "mutated"

	again, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.FirstName != "Ellen" {
		t.Errorf("stored user was mutated through a returned copy: %q", again.FirstName)
	}
}

func TestMemoryMovie_JoinsOwnerOnRead(t *testing.T) {
	users, movies := newMemoryRepos(t)
	ctx := context.Background()

	owner := models.User{Username: "ripley", FirstName: "Ellen", LastName: "Ripley"}
	if err := users.Add(ctx, &owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	movie := models.Movie{Title: "Alien", Year: 1979, Genre: models.GenreSciFi, UserID: owner.ID}
	if err := movies.Add(ctx, &movie); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := movies.GetByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.User == nil || got.User.FullName() != "Ellen Ripley" {
		t.Errorf("expected joined owner Ellen Ripley, got %+v", got.User)
	}
}

func TestMemoryMovie_MissingRowsAreQuiet(t *testing.T) {
	_, movies := newMemoryRepos(t)
	ctx := context.Background()

	got, err := movies.GetByID(ctx, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a missing movie, got %+v", got)
	}

	if err := movies.Delete(ctx, &models.Movie{ID: 99}); err != nil {
		t.Fatalf("deleting a missing movie should not fail: %v", err)
	}
}
