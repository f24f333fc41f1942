package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/service/auth"
	"github.com/phrazzld/shop-api/internal/store"
)

// AuthResult is a user together with a freshly issued access token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// UserService provides registration, login and session operations
type UserService interface {
	// Register creates an active user with the default role and signs them in.
	Register(ctx context.Context, email, fullName, password string) (*AuthResult, error)

	// Login verifies credentials and issues a token.
	// Returns ErrInvalidCredentials or ErrInactiveUser on failure.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// CheckStatus issues a fresh token for an already authenticated user.
	CheckStatus(ctx context.Context, user *domain.User) (*AuthResult, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With("component", "user_service"),
	}
}

// Register implements UserService.Register
func (s *UserServiceImpl) Register(ctx context.Context, email, fullName, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, fullName, password)
	if err != nil {
		log.Debug("invalid registration data",
			"error", err,
			"email", email)
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to register an existing email",
				"email", user.Email)
		}
		return nil, translateStoreError(log, "register user", err)
	}

	log.Info("user registered",
		"user_id", user.ID,
		"email", user.Email)

	return s.issue(ctx, user)
}

// Login implements UserService.Login
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login attempt for unknown email",
				"email", email)
			return nil, fmt.Errorf("%w (email)", ErrInvalidCredentials)
		}
		return nil, translateStoreError(log, "login", err)
	}

	if err := s.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login attempt with wrong password",
			"user_id", user.ID)
		return nil, fmt.Errorf("%w (password)", ErrInvalidCredentials)
	}

	if !user.IsActive {
		log.Debug("login attempt for inactive user",
			"user_id", user.ID)
		return nil, ErrInactiveUser
	}

	return s.issue(ctx, user)
}

// CheckStatus implements UserService.CheckStatus
func (s *UserServiceImpl) CheckStatus(ctx context.Context, user *domain.User) (*AuthResult, error) {
	return s.issue(ctx, user)
}

// GetUser implements UserService.GetUser
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, translateStoreError(log, "get user", err)
	}
	return user, nil
}

func (s *UserServiceImpl) issue(ctx context.Context, user *domain.User) (*AuthResult, error) {
	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to generate token",
			"error", err,
			"user_id", user.ID)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
