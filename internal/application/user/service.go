// Package user provides the application layer for user management
package user

import (
	"context"
	stderrors "errors"

	"github.com/culinaryos/kitchen/internal/domain/user"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService implements user management use cases
type UserService struct {
	userRepo   outbound.UserRepository
	tokens     outbound.TokenIssuer
	metrics    outbound.MetricsRecorder
	bcryptCost int
	logger     *zap.Logger
}

var _ inbound.UserService = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(
	userRepo outbound.UserRepository,
	tokens outbound.TokenIssuer,
	metrics outbound.MetricsRecorder,
	bcryptCost int,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		tokens:     tokens,
		metrics:    metrics,
		bcryptCost: bcryptCost,
		logger:     logger.Named("user-service"),
	}
}

// Register creates a new user account and signs it in
func (s *UserService) Register(ctx context.Context, cmd inbound.RegisterCommand) (*inbound.AuthResultDTO, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewDatabaseError("check email", err)
	}
	if exists {
		return nil, errors.NewEmailAlreadyExistsError(cmd.Email)
	}

	u, err := user.NewUser(cmd.Email, cmd.Name, cmd.Password, s.bcryptCost)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		if stderrors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, errors.NewEmailAlreadyExistsError(u.Email())
		}
		return nil, errors.NewDatabaseError("create user", err)
	}

	token, err := s.tokens.Issue(u.ID(), u.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	if s.metrics != nil {
		s.metrics.UserRegistered()
	}
	s.logger.Info("User registered",
		zap.String("user_id", u.ID().String()),
		zap.String("email", u.Email()),
	)

	return &inbound.AuthResultDTO{UserDTO: *UserToDTO(u), Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error.
func (s *UserService) Login(ctx context.Context, cmd inbound.LoginCommand) (*inbound.AuthResultDTO, error) {
	u, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewInvalidCredentialsError()
		}
		return nil, errors.NewDatabaseError("find user", err)
	}

	if err := u.CheckPassword(cmd.Password); err != nil {
		s.logger.Debug("Password mismatch", zap.String("user_id", u.ID().String()))
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Issue(u.ID(), u.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	s.logger.Info("User logged in", zap.String("user_id", u.ID().String()))
	return &inbound.AuthResultDTO{UserDTO: *UserToDTO(u), Token: token}, nil
}

// Logout revokes the presented token
func (s *UserService) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}
	return nil
}

// GetProfile returns the user's public profile
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return UserToDTO(u), nil
}

// ChangePassword replaces the password after verifying the current one
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.ChangePassword(oldPassword, newPassword, s.bcryptCost); err != nil {
		if stderrors.Is(err, user.ErrPasswordMismatch) {
			return errors.NewInvalidPasswordError()
		}
		return errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return errors.NewDatabaseError("update password", err)
	}

	s.logger.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

// UpdateProfile applies a partial profile update
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, cmd inbound.UpdateProfileCommand) (*inbound.UserDTO, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch := user.ProfilePatch{
		Name:           cmd.Name,
		Email:          cmd.Email,
		ProfilePicture: cmd.ProfilePicture,
	}
	if cmd.DietaryPreferences != nil {
		patch.DietaryPreferences = *cmd.DietaryPreferences
		patch.ReplacePreferences = true
	}

	previousEmail := u.Email()
	if err := u.UpdateProfile(patch); err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if u.Email() != previousEmail {
		taken, err := s.userRepo.ExistsByEmail(ctx, u.Email())
		if err != nil {
			return nil, errors.NewDatabaseError("check email", err)
		}
		if taken {
			return nil, errors.NewEmailAlreadyExistsError(u.Email())
		}
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		if stderrors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, errors.NewEmailAlreadyExistsError(u.Email())
		}
		return nil, errors.NewDatabaseError("update profile", err)
	}

	return UserToDTO(u), nil
}

func (s *UserService) findUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewUserNotFoundError(userID.String())
		}
		return nil, errors.NewDatabaseError("find user", err)
	}
	return u, nil
}

// UserToDTO converts a user to its public view
func UserToDTO(u *user.User) *inbound.UserDTO {
	prefs := u.DietaryPreferences()
	if prefs == nil {
		prefs = []string{}
	}
	return &inbound.UserDTO{
		ID:                 u.ID(),
		Name:               u.Name(),
		Email:              u.Email(),
		ProfilePicture:     u.ProfilePicture(),
		DietaryPreferences: prefs,
	}
}
