package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned when the token is forged, malformed,
	// or carries a non-numeric subject.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// TokenValidity is the fixed lifetime of an issued token.
const TokenValidity = 24 * time.Hour

// JWTConfig holds token signing configuration.
type JWTConfig struct {
	SecretKey string
	Issuer    string
}

// DefaultJWTConfig returns a default JWT configuration.
// In production, the secret key must come from the environment.
func DefaultJWTConfig() JWTConfig {
	return JWTConfig{
		SecretKey: "dev-secret-change-in-production",
		Issuer:    "todo-api",
	}
}

// TokenClaims are the claims carried by an issued token. The subject
// is the owning user's id in decimal form.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies signed bearer tokens. Verification is
// stateless: any process holding the secret can verify independently.
type JWTManager struct {
	config JWTConfig
}

// NewJWTManager creates a new JWTManager with the given configuration.
func NewJWTManager(config JWTConfig) *JWTManager {
	return &JWTManager{config: config}
}

// Issue produces a signed token asserting the given user identity,
// valid for TokenValidity from now.
func (m *JWTManager) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.config.Issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.SecretKey))
}

// Verify validates signature and expiry and returns the caller's
// identity. Any failure mode (bad signature, malformed payload,
// missing or non-numeric subject, expiry in the past) is reported as
// ErrInvalidToken or ErrExpiredToken; callers must treat both as
// an authentication failure.
func (m *JWTManager) Verify(tokenString string) (uint, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, "", ErrExpiredToken
		}
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", ErrInvalidToken
	}

	return uint(userID), claims.Email, nil
}
