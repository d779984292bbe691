package auth

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/Aqsa-Memon/TODO-APP/domain/user"
)

// ErrInvalidCredentials is returned for any login mismatch. It is
// deliberately the same for an unknown email and a wrong password so
// the response carries no user-enumeration signal.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Credentials is the result of a successful signup or login.
type Credentials struct {
	AccessToken string
	TokenType   string
	UserID      uint
}

// AuthService handles signup, login, and token verification.
type AuthService struct {
	repo   *UserRepository
	hasher *PasswordHasher
	jwt    *JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *UserRepository, hasher *PasswordHasher, jwt *JWTManager) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Signup registers a new account and issues its first token. Fails
// with ErrEmailTaken if the email is already registered; the check
// runs before the insert and the unique constraint catches the race.
func (s *AuthService) Signup(_ context.Context, email, password string) (*Credentials, error) {
	exists, err := s.repo.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return s.issueCredentials(user)
}

// Login authenticates by email and password and issues a fresh token
// with its own expiry, independent of any previously issued token.
func (s *AuthService) Login(_ context.Context, email, password string) (*Credentials, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueCredentials(user)
}

// VerifyToken validates a bearer token and returns the caller identity.
func (s *AuthService) VerifyToken(_ context.Context, token string) (*domain.Claims, error) {
	userID, email, err := s.jwt.Verify(token)
	if err != nil {
		return nil, err
	}

	return &domain.Claims{
		UserID: userID,
		Email:  email,
	}, nil
}

func (s *AuthService) issueCredentials(user *domain.User) (*Credentials, error) {
	token, err := s.jwt.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &Credentials{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
	}, nil
}
