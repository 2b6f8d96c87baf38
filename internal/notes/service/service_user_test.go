package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avstanoeva/movienotes/internal/config"
	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/mock"
	"github.com/avstanoeva/movienotes/internal/notes/models"
	"github.com/avstanoeva/movienotes/internal/notes/store"
	"github.com/avstanoeva/movienotes/internal/utils"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "noteapp-test",
		TokenDuration: time.Hour,
	}

	return NewUserService(mockUsers, cfg, logger.Nop()), mockUsers
}

func noteRegisterDTO() models.RegisterUserDTO {
	return models.RegisterUserDTO{
		FirstName:       "Jane",
		LastName:        "Doe",
		Username:        "janedoe",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Age:             30,
	}
}

func TestNoteRegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockUsers.EXPECT().GetByUsername(ctx, "janedoe").Return(nil, nil),
		mockUsers.EXPECT().Add(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u *models.User) error {
				assert.Equal(t, utils.HashPassword("secret123"), u.Password)
				assert.Equal(t, 30, u.Age)
				u.ID = 1
				return nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, noteRegisterDTO())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestNoteRegisterUser_AgeOutOfBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	for _, age := range []int{0, 11, 101} {
		in := noteRegisterDTO()
		in.Age = age

		_, err := svc.RegisterUser(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidUserData)
		assert.Contains(t, err.Error(), "age must be between")
	}
}

func TestNoteRegisterUser_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().GetByUsername(ctx, "janedoe").Return(&models.User{ID: 2, Username: "janedoe"}, nil)

	_, err := svc.RegisterUser(ctx, noteRegisterDTO())
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestNoteLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	t.Run("success issues parseable token", func(t *testing.T) {
		mockUsers.EXPECT().Login(ctx, "janedoe", utils.HashPassword("secret123")).Return(&models.User{
			ID: 1, Username: "janedoe", FirstName: "Jane", LastName: "Doe",
		}, nil)

		token, err := svc.LoginUser(ctx, models.LoginUserDTO{Username: "janedoe", Password: "secret123"})
		require.NoError(t, err)

		claims, err := utils.NewTokenManager("test-sign-key", "noteapp-test").Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", claims.UserFullName)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.LoginUser(ctx, models.LoginUserDTO{})
		assert.ErrorIs(t, err, ErrInvalidUserData)
	})

	t.Run("credential mismatch is not found", func(t *testing.T) {
		mockUsers.EXPECT().Login(ctx, "janedoe", gomock.Any()).Return(nil, nil)

		_, err := svc.LoginUser(ctx, models.LoginUserDTO{Username: "janedoe", Password: "wrong-one"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestNoteChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	stored := func() *models.User {
		return &models.User{ID: 1, Username: "janedoe", Password: utils.HashPassword("secret123")}
	}

	t.Run("wrong current password never persists", func(t *testing.T) {
		mockUsers.EXPECT().GetByUsername(ctx, "janedoe").Return(stored(), nil)

		err := svc.ChangePassword(ctx, models.ChangePasswordDTO{
			Username: "janedoe", CurrentPassword: "wrong-one", NewPassword: "newsecret",
		})
		assert.ErrorIs(t, err, ErrInvalidUserData)
	})

	t.Run("success saves only the new hash", func(t *testing.T) {
		gomock.InOrder(
			mockUsers.EXPECT().GetByUsername(ctx, "janedoe").Return(stored(), nil),
			mockUsers.EXPECT().SavePassword(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, u *models.User) error {
					assert.Equal(t, utils.HashPassword("newsecret"), u.Password)
					return nil
				},
			),
		)

		err := svc.ChangePassword(ctx, models.ChangePasswordDTO{
			Username: "janedoe", CurrentPassword: "secret123", NewPassword: "newsecret",
		})
		assert.NoError(t, err)
	})
}

func TestNoteDeleteUser_SelfOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	stored := &models.User{ID: 1, Username: "janedoe"}

	t.Run("caller mismatch", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(ctx, int64(1)).Return(stored, nil)

		err := svc.DeleteUser(ctx, 1, utils.CallerIdentity{UserID: 2})
		assert.ErrorIs(t, err, ErrInvalidUserData)
	})

	t.Run("self delete", func(t *testing.T) {
		gomock.InOrder(
			mockUsers.EXPECT().GetByID(ctx, int64(1)).Return(stored, nil),
			mockUsers.EXPECT().Delete(ctx, stored).Return(nil),
		)

		assert.NoError(t, svc.DeleteUser(ctx, 1, utils.CallerIdentity{UserID: 1}))
	})
}

func TestNoteUpdateUserDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	stored := func() *models.User {
		return &models.User{ID: 1, Username: "janedoe", FirstName: "Jane", LastName: "Doe", Age: 30}
	}

	t.Run("no details provided", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(ctx, int64(1)).Return(stored(), nil)

		_, err := svc.UpdateUserDetails(ctx, models.UpdateUserDetailsDTO{}, 1)
		assert.ErrorIs(t, err, ErrInvalidUserData)
		assert.Contains(t, err.Error(), "no details provided")
	})

	t.Run("own username is not a conflict", func(t *testing.T) {
		gomock.InOrder(
			mockUsers.EXPECT().GetByID(ctx, int64(1)).Return(stored(), nil),
			mockUsers.EXPECT().GetByUsername(ctx, "janedoe").Return(stored(), nil),
			mockUsers.EXPECT().Update(ctx, gomock.Any()).Return(nil),
		)

		updated, err := svc.UpdateUserDetails(ctx, models.UpdateUserDetailsDTO{Username: "janedoe", Age: 42}, 1)
		require.NoError(t, err)
		assert.Equal(t, 42, updated.Age)
	})

	t.Run("taken username is a conflict", func(t *testing.T) {
		gomock.InOrder(
			mockUsers.EXPECT().GetByID(ctx, int64(1)).Return(stored(), nil),
			mockUsers.EXPECT().GetByUsername(ctx, "someone").Return(&models.User{ID: 2, Username: "someone"}, nil),
		)

		_, err := svc.UpdateUserDetails(ctx, models.UpdateUserDetailsDTO{Username: "someone"}, 1)
		assert.ErrorIs(t, err, ErrInvalidUserData)
	})
}
