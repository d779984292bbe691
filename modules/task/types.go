package task

import (
	"time"

	domain "github.com/Aqsa-Memon/TODO-APP/domain/task"
)

// ListTasksRequest is the request for listing a user's tasks.
type ListTasksRequest struct {
	UserID uint `json:"user_id"`
}

// ListTasksResponse is the response containing a user's tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	UserID      uint   `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GetTaskRequest is the request for getting a single task.
type GetTaskRequest struct {
	UserID uint `json:"user_id"`
	TaskID uint `json:"task_id"`
}

// UpdateTaskRequest is the request for a partial task update. Nil
// fields are left unchanged; present fields overwrite, even when
// empty.
type UpdateTaskRequest struct {
	UserID      uint    `json:"user_id"`
	TaskID      uint    `json:"task_id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	UserID uint `json:"user_id"`
	TaskID uint `json:"task_id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
	TaskID  uint `json:"task_id"`
}

// ToggleTaskRequest is the request for toggling a task's completion.
type ToggleTaskRequest struct {
	UserID uint `json:"user_id"`
	TaskID uint `json:"task_id"`
}

// TaskResponse represents a task in responses.
type TaskResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// toTaskResponse converts a Task entity to a TaskResponse.
func toTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
