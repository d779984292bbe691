package api

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"

	domain "github.com/Aqsa-Memon/TODO-APP/domain/user"
	"github.com/Aqsa-Memon/TODO-APP/modules/auth"
	"github.com/Aqsa-Memon/TODO-APP/modules/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	authContainer mono.ServiceContainer
	tasks         task.TaskPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authContainer mono.ServiceContainer, tasks task.TaskPort) *Handlers {
	return &Handlers{
		authContainer: authContainer,
		tasks:         tasks,
	}
}

// Signup handles account creation.
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Email and password are required",
		})
	}

	authReq := auth.SignupRequest{Email: req.Email, Password: req.Password}
	var resp auth.SignupResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.authContainer,
		auth.ServiceSignup,
		json.Marshal,
		json.Unmarshal,
		&authReq,
		&resp,
	); err != nil {
		return h.handleAuthError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(TokenResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		UserID:      resp.UserID,
	})
}

// Login handles user login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Email and password are required",
		})
	}

	authReq := auth.LoginRequest{Email: req.Email, Password: req.Password}
	var resp auth.LoginResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.authContainer,
		auth.ServiceLogin,
		json.Marshal,
		json.Unmarshal,
		&authReq,
		&resp,
	); err != nil {
		return h.handleAuthError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(TokenResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		UserID:      resp.UserID,
	})
}

// ListTasks returns all tasks owned by the path user.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.tasks.List(c.UserContext(), callerID(c))
	if err != nil {
		return h.handleTaskError(c, err)
	}
	if tasks == nil {
		tasks = []task.TaskResponse{}
	}
	return c.Status(fiber.StatusOK).JSON(tasks)
}

// CreateTask creates a task owned by the path user.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if req.Title == nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Title is required",
		})
	}

	created, err := h.tasks.Create(c.UserContext(), callerID(c), *req.Title, req.Description)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetTask returns a single task owned by the path user.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	taskID, ok := parseTaskID(c)
	if !ok {
		return invalidTaskID(c)
	}

	found, err := h.tasks.Get(c.UserContext(), callerID(c), taskID)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(found)
}

// UpdateTask partially updates a task owned by the path user.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	taskID, ok := parseTaskID(c)
	if !ok {
		return invalidTaskID(c)
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	updated, err := h.tasks.Update(c.UserContext(), callerID(c), taskID, req.Title, req.Description)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

// DeleteTask hard-deletes a task owned by the path user.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	taskID, ok := parseTaskID(c)
	if !ok {
		return invalidTaskID(c)
	}

	if err := h.tasks.Delete(c.UserContext(), callerID(c), taskID); err != nil {
		return h.handleTaskError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleTask flips the completed flag of a task owned by the path user.
func (h *Handlers) ToggleTask(c *fiber.Ctx) error {
	taskID, ok := parseTaskID(c)
	if !ok {
		return invalidTaskID(c)
	}

	toggled, err := h.tasks.Toggle(c.UserContext(), callerID(c), taskID)
	if err != nil {
		return h.handleTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(toggled)
}

// callerID returns the verified caller identity. The ownership gate
// already proved it equals the path user id.
func callerID(c *fiber.Ctx) uint {
	claims := c.Locals(UserContextKey).(*domain.Claims)
	return claims.UserID
}

func parseTaskID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("taskID"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func invalidTaskID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: "Invalid task id",
	})
}

// handleAuthError maps auth service errors to HTTP responses. The
// service boundary is JSON, so error identity does not survive the
// round trip; known error messages are matched instead, and anything
// else stays a generic server error.
func (h *Handlers) handleAuthError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "email already registered"):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "conflict",
			Message: "Email already registered",
		})
	case strings.Contains(errStr, "invalid email or password"):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid credentials",
		})
	default:
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}

// handleTaskError maps task service errors to HTTP responses.
func (h *Handlers) handleTaskError(c *fiber.Ctx, err error) error {
	if strings.Contains(err.Error(), "task not found") {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	}

	log.Printf("[api] Internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
