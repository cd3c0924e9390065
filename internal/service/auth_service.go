package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cropadvisor/internal/auth"
	apperrors "cropadvisor/internal/errors"
	"cropadvisor/internal/model"
	"cropadvisor/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and session authentication.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo     repository.UserRepository
	jwtService   *auth.JWTService
	sessionStore auth.SessionStoreInterface
	passwords    *PasswordValidator
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, sessionStore auth.SessionStoreInterface) AuthService {
	return &authService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		passwords:    NewPasswordValidator(),
	}
}

// Register creates a new user with a hashed password. Username uniqueness is
// enforced by the storage layer's unique index, so concurrent registrations of
// the same name cannot both succeed.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if err := s.passwords.Validate(username, password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a signed session token.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	_, token, err := s.jwtService.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	return token, user, nil
}

// Logout revokes the session token so it cannot be replayed before expiry.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		// Session already invalid; nothing to revoke.
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.sessionStore.RevokeSession(ctx, claims.ID, ttl)
}
