package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstanoeva/movienotes/internal/config"
	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/movies/models"
	"github.com/avstanoeva/movienotes/internal/movies/store"
)

// newTestMovieService builds the service over a fresh in-memory backend
// with one registered owner, returning the storages for direct seeding.
func newTestMovieService(t *testing.T) (MovieService, *store.Storages, *models.User) {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{Backend: config.BackendMemory}, logger.Nop())
	require.NoError(t, err)

	owner := &models.User{
		Username:      "ripley",
		Password:      "hash",
		FirstName:     "Ellen",
		LastName:      "Ripley",
		FavoriteGenre: models.GenreSciFi,
	}
	require.NoError(t, storages.Users.Add(context.Background(), owner))

	return NewMovieService(storages.Movies, storages.Users, logger.Nop()), storages, owner
}

func addMovieDTO(ownerID int64) models.AddMovieDTO {
	return models.AddMovieDTO{
		Title:       "Dune",
		Description: "Fear is the mind-killer.",
		Year:        2021,
		Genre:       models.GenreSciFi,
		UserID:      ownerID,
	}
}

func TestAddMovie_Success(t *testing.T) {
	svc, _, owner := newTestMovieService(t)

	dto, err := svc.AddMovie(context.Background(), addMovieDTO(owner.ID))
	require.NoError(t, err)

	assert.Equal(t, "Dune", dto.Title)
	assert.Equal(t, 2021, dto.Year)
	assert.Equal(t, models.GenreSciFi, dto.Genre)
	assert.Equal(t, "Ellen Ripley", dto.OwnerFullName)
}

func TestAddMovie_OwnerNotFound(t *testing.T) {
	svc, storages, _ := newTestMovieService(t)

	in := addMovieDTO(9999)
	_, err := svc.AddMovie(context.Background(), in)
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	// Failed adds must leave the repository untouched.
	all, err := storages.Movies.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAddMovie_ValidationOrder(t *testing.T) {
	svc, _, owner := newTestMovieService(t)

	tests := []struct {
		name    string
		mutate  func(*models.AddMovieDTO)
		wantMsg string
	}{
		{
			name:    "empty title",
			mutate:  func(d *models.AddMovieDTO) { d.Title = "" },
			wantMsg: "title must not be empty",
		},
		{
			name:    "non-positive year",
			mutate:  func(d *models.AddMovieDTO) { d.Year = 0 },
			wantMsg: "year must be positive",
		},
		{
			name:    "unknown genre",
			mutate:  func(d *models.AddMovieDTO) { d.Genre = models.Genre(42) },
			wantMsg: "unknown genre",
		},
		{
			name: "oversized description",
			mutate: func(d *models.AddMovieDTO) {
				for len(d.Description) <= 250 {
					d.Description += "aaaaaaaaaa"
				}
			},
			wantMsg: "description must not exceed",
		},
		{
			name: "empty title wins over bad year",
			mutate: func(d *models.AddMovieDTO) {
				d.Title = ""
				d.Year = -1
			},
			wantMsg: "title must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := addMovieDTO(owner.ID)
			tt.mutate(&in)

			_, err := svc.AddMovie(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidMovieData)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGetMovieByID(t *testing.T) {
	svc, _, owner := newTestMovieService(t)

	added, err := svc.AddMovie(context.Background(), addMovieDTO(owner.ID))
	require.NoError(t, err)

	got, err := svc.GetMovieByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, added, got)

	_, err = svc.GetMovieByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidMovieData)

	_, err = svc.GetMovieByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestGetAllMovies_FiltersToOwner(t *testing.T) {
	svc, storages, owner := newTestMovieService(t)

	other := &models.User{Username: "dallas", Password: "hash"}
	require.NoError(t, storages.Users.Add(context.Background(), other))

	_, err := svc.AddMovie(context.Background(), addMovieDTO(owner.ID))
	require.NoError(t, err)

	in := addMovieDTO(other.ID)
	in.Title = "Heat"
	_, err = svc.AddMovie(context.Background(), in)
	require.NoError(t, err)

	dtos, err := svc.GetAllMovies(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "Dune", dtos[0].Title)
}

func TestGetAllMovies_EmptyIsNotFound(t *testing.T) {
	svc, _, owner := newTestMovieService(t)

	// Entirely empty repository.
	_, err := svc.GetAllMovies(context.Background(), owner.ID)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	// Non-empty repository, but nothing owned by the queried user.
	_, err = svc.AddMovie(context.Background(), addMovieDTO(owner.ID))
	require.NoError(t, err)

	_, err = svc.GetAllMovies(context.Background(), owner.ID+1)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestFilterMovies(t *testing.T) {
	svc, _, owner := newTestMovieService(t)

	_, err := svc.AddMovie(context.Background(), addMovieDTO(owner.ID))
	require.NoError(t, err)

	second := addMovieDTO(owner.ID)
	second.Title = "Heat"
	second.Year = 1995
	second.Genre = models.GenreAction
	_, err = svc.AddMovie(context.Background(), second)
	require.NoError(t, err)

	genre := models.GenreSciFi
	year := 1995
	badGenre := models.Genre(42)
	badYear := 1889

	t.Run("no criteria", func(t *testing.T) {
		_, err := svc.FilterMovies(context.Background(), nil, nil, owner.ID)
		assert.ErrorIs(t, err, ErrInvalidMovieData)
	})

	t.Run("invalid genre", func(t *testing.T) {
		_, err := svc.FilterMovies(context.Background(), &badGenre, nil, owner.ID)
		assert.ErrorIs(t, err, ErrInvalidMovieData)
	})

	t.Run("year out of range", func(t *testing.T) {
		_, err := svc.FilterMovies(context.Background(), nil, &badYear, owner.ID)
		assert.ErrorIs(t, err, ErrInvalidMovieData)
	})

	t.Run("by genre", func(t *testing.T) {
		dtos, err := svc.FilterMovies(context.Background(), &genre, nil, owner.ID)
		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, "Dune", dtos[0].Title)
	})

	t.Run("by year", func(t *testing.T) {
		dtos, err := svc.FilterMovies(context.Background(), nil, &year, owner.ID)
		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, "Heat", dtos[0].Title)
	})

	t.Run("genre and year must both match", func(t *testing.T) {
		_, err := svc.FilterMovies(context.Background(), &genre, &year, owner.ID)
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func TestUpdateMovie(t *testing.T) {
	svc, _, owner := newTestMovieService(t)

	_, err := svc.AddMovie(context.Background(), addMovieDTO(owner.ID))
	require.NoError(t, err)

	update := models.UpdateMovieDTO{
		ID:          1,
		Title:       "Dune: Part Two",
		Description: "Long live the fighters.",
		Year:        2024,
		Genre:       models.GenreSciFi,
		UserID:      owner.ID,
	}

	dto, err := svc.UpdateMovie(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, "Dune: Part Two", dto.Title)
	assert.Equal(t, 2024, dto.Year)
	assert.Equal(t, "Ellen Ripley", dto.OwnerFullName)

	got, err := svc.GetMovieByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, dto, got)
}

func TestUpdateMovie_Failures(t *testing.T) {
	svc, _, owner := newTestMovieService(t)

	_, err := svc.AddMovie(context.Background(), addMovieDTO(owner.ID))
	require.NoError(t, err)

	t.Run("movie not found", func(t *testing.T) {
		_, err := svc.UpdateMovie(context.Background(), models.UpdateMovieDTO{ID: 404, Title: "x", Year: 2000, UserID: owner.ID})
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})

	t.Run("owner not found", func(t *testing.T) {
		_, err := svc.UpdateMovie(context.Background(), models.UpdateMovieDTO{ID: 1, Title: "x", Year: 2000, UserID: 9999})
		assert.ErrorIs(t, err, ErrOwnerNotFound)
	})

	t.Run("invalid fields leave movie unchanged", func(t *testing.T) {
		_, err := svc.UpdateMovie(context.Background(), models.UpdateMovieDTO{ID: 1, Title: "", Year: 2000, UserID: owner.ID})
		assert.ErrorIs(t, err, ErrInvalidMovieData)

		got, err := svc.GetMovieByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Dune", got.Title)
	})
}

func TestDeleteMovie(t *testing.T) {
	svc, _, owner := newTestMovieService(t)

	_, err := svc.AddMovie(context.Background(), addMovieDTO(owner.ID))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteMovie(context.Background(), -1), ErrInvalidMovieData)
	assert.ErrorIs(t, svc.DeleteMovie(context.Background(), 404), ErrMovieNotFound)

	require.NoError(t, svc.DeleteMovie(context.Background(), 1))

	_, err = svc.GetMovieByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}
