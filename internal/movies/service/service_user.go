package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avstanoeva/movienotes/internal/config"
	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/movies/models"
	"github.com/avstanoeva/movienotes/internal/movies/store"
	"github.com/avstanoeva/movienotes/internal/utils"
)

const (
	minUsernameLength = 5
	maxUsernameLength = 30
	minPasswordLength = 5
	maxPasswordLength = 30
	maxNameLength     = 50
)

type userService struct {
	userRepository store.UserRepository
	tokens         *utils.TokenManager
	tokenDuration  time.Duration
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository
// and populated with token parameters from cfg.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		tokens:         utils.NewTokenManager(cfg.TokenSignKey, cfg.TokenIssuer),
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser validates the registration request, hashes the password
// and persists the new account. The username-uniqueness pre-check runs
// last; the store's unique constraint backstops the remaining race.
func (s *userService) RegisterUser(ctx context.Context, dto models.RegisterUserDTO) (*models.User, error) {
	log := logger.FromContext(ctx)

	if dto.Username == "" || dto.Password == "" || dto.ConfirmPassword == "" {
		return nil, fmt.Errorf("%w: username, password and password confirmation are required", ErrInvalidUserData)
	}

	if dto.Password != dto.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrInvalidUserData)
	}

	if len(dto.Username) < minUsernameLength || len(dto.Username) > maxUsernameLength {
		return nil, fmt.Errorf("%w: username must be between %d and %d characters", ErrInvalidUserData, minUsernameLength, maxUsernameLength)
	}

	if len(dto.Password) < minPasswordLength || len(dto.Password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: password must be between %d and %d characters", ErrInvalidUserData, minPasswordLength, maxPasswordLength)
	}

	if len(dto.FirstName) > maxNameLength {
		return nil, fmt.Errorf("%w: first name must not exceed %d characters", ErrInvalidUserData, maxNameLength)
	}

	if len(dto.LastName) > maxNameLength {
		return nil, fmt.Errorf("%w: last name must not exceed %d characters", ErrInvalidUserData, maxNameLength)
	}

	if !dto.FavoriteGenre.Valid() {
		return nil, fmt.Errorf("%w: unknown favorite genre %d", ErrInvalidUserData, dto.FavoriteGenre)
	}

	existing, err := s.userRepository.GetByUsername(ctx, dto.Username)
	if err != nil {
		log.Err(err).Str("username", dto.Username).Msg("username lookup failed")
		return nil, fmt.Errorf("username lookup failed: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %q is already taken", store.ErrUsernameTaken, dto.Username)
	}

	user := models.NewUserFromRegisterDTO(dto, utils.HashPassword(dto.Password))
	if err := s.userRepository.Add(ctx, user); err != nil {
		log.Err(err).Str("username", dto.Username).Msg("user creation ended with error")
		return nil, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// LoginUser authenticates the credentials and issues a signed bearer
// token. A failed credential match never says which part was wrong.
func (s *userService) LoginUser(ctx context.Context, dto models.LoginUserDTO) (string, error) {
	log := logger.FromContext(ctx)

	if dto.Username == "" || dto.Password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrInvalidUserData)
	}

	user, err := s.userRepository.Login(ctx, dto.Username, utils.HashPassword(dto.Password))
	if err != nil {
		log.Err(err).Str("username", dto.Username).Msg("login lookup failed")
		return "", fmt.Errorf("login lookup failed: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("%w: wrong username or password", ErrUserNotFound)
	}

	token, err := s.tokens.Issue(user.FullName(), user.ID, user.Username, s.tokenDuration)
	if err != nil {
		log.Err(err).Int64("userId", user.ID).Msg("token issue ended with error")
		return "", fmt.Errorf("token issue ended with error: %w", err)
	}

	return token, nil
}

func (s *userService) ChangePassword(ctx context.Context, dto models.ChangePasswordDTO) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetByUsername(ctx, dto.Username)
	if err != nil {
		log.Err(err).Str("username", dto.Username).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: username=%q", ErrUserNotFound, dto.Username)
	}

	if utils.HashPassword(dto.CurrentPassword) != user.Password {
		return fmt.Errorf("%w: current password is wrong", ErrInvalidUserData)
	}

	if dto.NewPassword == "" {
		return fmt.Errorf("%w: new password must not be empty", ErrInvalidUserData)
	}
	if len(dto.NewPassword) < minPasswordLength || len(dto.NewPassword) > maxPasswordLength {
		return fmt.Errorf("%w: new password must be between %d and %d characters", ErrInvalidUserData, minPasswordLength, maxPasswordLength)
	}

	user.Password = utils.HashPassword(dto.NewPassword)
	if err := s.userRepository.SavePassword(ctx, user); err != nil {
		log.Err(err).Int64("userId", user.ID).Msg("password change ended with error")
		return fmt.Errorf("password change ended with error: %w", err)
	}

	return nil
}

// DeleteUser removes the target account. The rule is strictly self-only:
// the caller's ID from the validated token must equal the target ID.
func (s *userService) DeleteUser(ctx context.Context, id int64, caller utils.CallerIdentity) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: id=%d", ErrUserNotFound, id)
	}

	if caller.UserID <= 0 {
		return fmt.Errorf("%w: caller identity is missing a user id", ErrInvalidUserData)
	}
	if caller.UserID != id {
		return fmt.Errorf("%w: not authorized to delete this user", ErrInvalidUserData)
	}

	if err := s.userRepository.Delete(ctx, user); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

// UpdateUserDetails applies the supplied profile fields to the caller's
// own account. A username lookup that finds the caller's own record is
// not a conflict, so re-submitting the current username is a no-op.
func (s *userService) UpdateUserDetails(ctx context.Context, dto models.UpdateUserDetailsDTO, callerUserID int64) (*models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetByID(ctx, callerUserID)
	if err != nil {
		log.Err(err).Int64("id", callerUserID).Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrUserNotFound, callerUserID)
	}

	if dto.FirstName != "" && len(dto.FirstName) > maxNameLength {
		return nil, fmt.Errorf("%w: first name must not exceed %d characters", ErrInvalidUserData, maxNameLength)
	}
	if dto.LastName != "" && len(dto.LastName) > maxNameLength {
		return nil, fmt.Errorf("%w: last name must not exceed %d characters", ErrInvalidUserData, maxNameLength)
	}

	if dto.Username != "" {
		if len(dto.Username) < minUsernameLength || len(dto.Username) > maxUsernameLength {
			return nil, fmt.Errorf("%w: username must be between %d and %d characters", ErrInvalidUserData, minUsernameLength, maxUsernameLength)
		}

		existing, err := s.userRepository.GetByUsername(ctx, dto.Username)
		if err != nil {
			log.Err(err).Str("username", dto.Username).Msg("username lookup failed")
			return nil, fmt.Errorf("username lookup failed: %w", err)
		}
		if existing != nil && existing.ID != user.ID {
			return nil, fmt.Errorf("%w: username %q is already taken", ErrInvalidUserData, dto.Username)
		}
	}

	if dto.Empty() {
		return nil, fmt.Errorf("%w: no details provided", ErrInvalidUserData)
	}

	user.ApplyDetailsUpdate(dto)
	if err := s.userRepository.Update(ctx, user); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("user update ended with error")
		return nil, fmt.Errorf("user update ended with error: %w", err)
	}

	return user, nil
}
