package api

// SignupRequest represents a signup request body.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      uint   `json:"user_id"`
}

// CreateTaskRequest represents a task creation body. Title must be
// present in the body; an empty string is accepted.
type CreateTaskRequest struct {
	Title       *string `json:"title"`
	Description string  `json:"description"`
}

// UpdateTaskRequest represents a partial task update body. Absent
// fields are left unchanged; present fields overwrite, even when
// empty.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
