package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Service names provided by this module.
const (
	ServiceList   = "task.list"
	ServiceCreate = "task.create"
	ServiceGet    = "task.get"
	ServiceUpdate = "task.update"
	ServiceDelete = "task.delete"
	ServiceToggle = "task.toggle"
)

// TaskPort is the interface other modules use to operate on tasks.
// Every operation is scoped to an owning user id.
type TaskPort interface {
	List(ctx context.Context, userID uint) ([]TaskResponse, error)
	Create(ctx context.Context, userID uint, title, description string) (TaskResponse, error)
	Get(ctx context.Context, userID, taskID uint) (TaskResponse, error)
	Update(ctx context.Context, userID, taskID uint, title, description *string) (TaskResponse, error)
	Delete(ctx context.Context, userID, taskID uint) error
	Toggle(ctx context.Context, userID, taskID uint) (TaskResponse, error)
}

// TaskAdapter implements TaskPort over the service container.
type TaskAdapter struct {
	container mono.ServiceContainer
}

// Compile-time interface check.
var _ TaskPort = (*TaskAdapter)(nil)

// NewTaskAdapter creates a new TaskAdapter.
func NewTaskAdapter(container mono.ServiceContainer) *TaskAdapter {
	return &TaskAdapter{container: container}
}

func (a *TaskAdapter) call(ctx context.Context, service string, req, resp any) error {
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	return nil
}

// List returns all tasks owned by a user.
func (a *TaskAdapter) List(ctx context.Context, userID uint) ([]TaskResponse, error) {
	req := ListTasksRequest{UserID: userID}
	var resp ListTasksResponse
	if err := a.call(ctx, ServiceList, &req, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// Create creates a new task owned by a user.
func (a *TaskAdapter) Create(ctx context.Context, userID uint, title, description string) (TaskResponse, error) {
	req := CreateTaskRequest{UserID: userID, Title: title, Description: description}
	var resp TaskResponse
	if err := a.call(ctx, ServiceCreate, &req, &resp); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

// Get returns a single task owned by a user.
func (a *TaskAdapter) Get(ctx context.Context, userID, taskID uint) (TaskResponse, error) {
	req := GetTaskRequest{UserID: userID, TaskID: taskID}
	var resp TaskResponse
	if err := a.call(ctx, ServiceGet, &req, &resp); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

// Update partially updates a task owned by a user.
func (a *TaskAdapter) Update(ctx context.Context, userID, taskID uint, title, description *string) (TaskResponse, error) {
	req := UpdateTaskRequest{UserID: userID, TaskID: taskID, Title: title, Description: description}
	var resp TaskResponse
	if err := a.call(ctx, ServiceUpdate, &req, &resp); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

// Delete removes a task owned by a user.
func (a *TaskAdapter) Delete(ctx context.Context, userID, taskID uint) error {
	req := DeleteTaskRequest{UserID: userID, TaskID: taskID}
	var resp DeleteTaskResponse
	return a.call(ctx, ServiceDelete, &req, &resp)
}

// Toggle flips a task's completed flag.
func (a *TaskAdapter) Toggle(ctx context.Context, userID, taskID uint) (TaskResponse, error) {
	req := ToggleTaskRequest{UserID: userID, TaskID: taskID}
	var resp TaskResponse
	if err := a.call(ctx, ServiceToggle, &req, &resp); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}
