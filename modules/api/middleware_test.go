package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "github.com/Aqsa-Memon/TODO-APP/domain/user"
	"github.com/gofiber/fiber/v2"
)

// mockAuthPort implements auth.AuthPort for testing.
type mockAuthPort struct {
	verifyTokenFunc func(ctx context.Context, token string) (*domain.Claims, error)
}

func (m *mockAuthPort) VerifyToken(ctx context.Context, token string) (*domain.Claims, error) {
	if m.verifyTokenFunc != nil {
		return m.verifyTokenFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func claimsFor(userID uint) *mockAuthPort {
	return &mockAuthPort{
		verifyTokenFunc: func(ctx context.Context, token string) (*domain.Claims, error) {
			return &domain.Claims{UserID: userID, Email: "test@example.com"}, nil
		},
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		mockAuth       *mockAuthPort
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			mockAuth:       &mockAuthPort{},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"Authorization header is required"`,
		},
		{
			name:           "invalid authorization format",
			authHeader:     "Basic token123",
			mockAuth:       &mockAuthPort{},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `Invalid authorization header format`,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid-token",
			mockAuth: &mockAuthPort{
				verifyTokenFunc: func(ctx context.Context, token string) (*domain.Claims, error) {
					return nil, errors.New("invalid token")
				},
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"Invalid or expired token"`,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			mockAuth:       claimsFor(1),
			expectedStatus: http.StatusOK,
			expectedBody:   `"authenticated"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(AuthMiddleware(tt.mockAuth))
			app.Get("/test", func(c *fiber.Ctx) error {
				return c.JSON(fiber.Map{"status": "authenticated"})
			})

			req := httptest.NewRequest("GET", "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("status = %v, want %v", resp.StatusCode, tt.expectedStatus)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("io.ReadAll() error = %v", err)
			}
			if !strings.Contains(string(body), tt.expectedBody) {
				t.Errorf("body = %v, want to contain %v", string(body), tt.expectedBody)
			}
		})
	}
}

func TestOwnershipGate(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		callerID       uint
		expectedStatus int
	}{
		{
			name:           "caller matches path user",
			path:           "/api/1/tasks",
			callerID:       1,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "caller differs from path user",
			path:           "/api/2/tasks",
			callerID:       1,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "non-numeric path user id",
			path:           "/api/alice/tasks",
			callerID:       1,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			group := app.Group("/api/:userID/tasks", AuthMiddleware(claimsFor(tt.callerID)), OwnershipGate())

			// The handler only runs when the gate passes; a Forbidden
			// response must never depend on what the store contains.
			group.Get("/", func(c *fiber.Ctx) error {
				return c.JSON(fiber.Map{"status": "reached"})
			})

			req := httptest.NewRequest("GET", tt.path, nil)
			req.Header.Set("Authorization", "Bearer token")

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("status = %v, want %v", resp.StatusCode, tt.expectedStatus)
			}
		})
	}
}

func TestOwnershipGate_ForbiddenBeforeExistence(t *testing.T) {
	// The gate rejects a cross-user request without the handler (and
	// therefore the store) ever being consulted.
	handlerCalled := false

	app := fiber.New()
	group := app.Group("/api/:userID/tasks", AuthMiddleware(claimsFor(1)), OwnershipGate())
	group.Get("/:taskID", func(c *fiber.Ctx) error {
		handlerCalled = true
		return c.JSON(fiber.Map{"status": "leaked"})
	})

	req := httptest.NewRequest("GET", "/api/2/tasks/123", nil)
	req.Header.Set("Authorization", "Bearer token")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusForbidden)
	}
	if handlerCalled {
		t.Error("handler ran despite ownership mismatch")
	}
}
