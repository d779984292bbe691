package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	config := JWTConfig{
		SecretKey: "test-secret-key",
		Issuer:    "test-issuer",
	}
	manager := NewJWTManager(config)

	userID := uint(42)
	email := "test@example.com"

	token, err := manager.Issue(userID, email)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Error("Issue() returned empty token")
	}

	gotID, gotEmail, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if gotID != userID {
		t.Errorf("Verify() userID = %v, want %v", gotID, userID)
	}
	if gotEmail != email {
		t.Errorf("Verify() email = %v, want %v", gotEmail, email)
	}
}

func TestJWTManager_InvalidToken(t *testing.T) {
	manager := NewJWTManager(DefaultJWTConfig())

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "random string",
			token: "not.a.valid.token",
		},
		{
			name:  "malformed jwt",
			token: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := manager.Verify(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestJWTManager_WrongSecretKey(t *testing.T) {
	manager1 := NewJWTManager(JWTConfig{SecretKey: "secret-key-1", Issuer: "test"})
	manager2 := NewJWTManager(JWTConfig{SecretKey: "secret-key-2", Issuer: "test"})

	token, err := manager1.Issue(1, "test@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, _, err = manager2.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() with different secret: error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	config := JWTConfig{SecretKey: "test-secret-key", Issuer: "test"}
	manager := NewJWTManager(config)

	// Sign a token whose expiry is already in the past. The signature
	// is valid; only the expiry must cause the failure.
	now := time.Now()
	claims := TokenClaims{
		Email: "expired@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.Issuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.SecretKey))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	_, _, err = manager.Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTManager_NonNumericSubject(t *testing.T) {
	config := JWTConfig{SecretKey: "test-secret-key", Issuer: "test"}
	manager := NewJWTManager(config)

	tests := []struct {
		name    string
		subject string
	}{
		{
			name:    "alphabetic subject",
			subject: "alice",
		},
		{
			name:    "missing subject",
			subject: "",
		},
		{
			name:    "negative subject",
			subject: "-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := TokenClaims{
				Email: "test@example.com",
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    config.Issuer,
					Subject:   tt.subject,
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					IssuedAt:  jwt.NewNumericDate(time.Now()),
				},
			}
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.SecretKey))
			if err != nil {
				t.Fatalf("SignedString() error = %v", err)
			}

			_, _, err = manager.Verify(token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestJWTManager_ValidityWindow(t *testing.T) {
	manager := NewJWTManager(JWTConfig{SecretKey: "test-secret-key", Issuer: "test"})

	token, err := manager.Issue(7, "window@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parsed, err := jwt.ParseWithClaims(token, &TokenClaims{}, func(*jwt.Token) (any, error) {
		return []byte("test-secret-key"), nil
	})
	if err != nil {
		t.Fatalf("ParseWithClaims() error = %v", err)
	}

	claims := parsed.Claims.(*TokenClaims)
	if claims.ID == "" {
		t.Error("issued token has no jti")
	}

	window := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if window != TokenValidity {
		t.Errorf("validity window = %v, want %v", window, TokenValidity)
	}
}
