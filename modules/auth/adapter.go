package auth

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/Aqsa-Memon/TODO-APP/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Service names provided by this module.
const (
	ServiceSignup      = "signup"
	ServiceLogin       = "login"
	ServiceVerifyToken = "verify-token"
)

// AuthPort is the interface other modules use to resolve a bearer
// token into a caller identity.
type AuthPort interface {
	VerifyToken(ctx context.Context, token string) (*domain.Claims, error)
}

// AuthAdapter implements AuthPort over the service container.
type AuthAdapter struct {
	container mono.ServiceContainer
}

// NewAuthAdapter creates a new AuthAdapter.
func NewAuthAdapter(container mono.ServiceContainer) *AuthAdapter {
	return &AuthAdapter{container: container}
}

// VerifyToken validates a bearer token and returns its claims.
func (a *AuthAdapter) VerifyToken(ctx context.Context, token string) (*domain.Claims, error) {
	req := VerifyTokenRequest{Token: token}
	var resp VerifyTokenResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceVerifyToken,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("verify-token request failed: %w", err)
	}

	if !resp.Valid {
		return nil, fmt.Errorf("token verification failed: %s", resp.Error)
	}

	return &domain.Claims{
		UserID: resp.UserID,
		Email:  resp.Email,
	}, nil
}
