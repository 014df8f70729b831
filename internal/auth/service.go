package auth

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/internal/database"
	"blog-backend/internal/models"
)

// UserStore is the credential store the account flows depend on
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// Service handles registration, login and profile updates
type Service struct {
	users  UserStore
	tokens *TokenIssuer
}

// NewService creates a new auth service. tokens may be nil for callers
// that never log users in.
func NewService(users UserStore, tokens *TokenIssuer) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a user with a hashed password.
// Missing fields fail before storage is touched; a taken username yields ErrUserExists.
func (s *Service) Register(ctx context.Context, creds models.Credentials) (*models.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	hash, err := HashPassword(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     creds.Username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrUserAlreadyExists) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a session token
func (s *Service) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}
	if s.tokens == nil {
		return "", errors.New("token issuer not configured")
	}

	user, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if !VerifyPassword(creds.Password, user.PasswordHash) {
		return "", ErrWrongPassword
	}

	return s.tokens.Issue(user.ID)
}

// Profile returns the user behind an authenticated identity
func (s *Service) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes username and/or password. An empty update
// returns the current user unchanged.
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return user, nil
	}

	if upd.Username != "" {
		user.Username = upd.Username
	}
	if upd.Password != "" {
		hash, err := HashPassword(upd.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, database.ErrUserAlreadyExists):
			return nil, ErrUserExists
		case errors.Is(err, database.ErrUserNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}
