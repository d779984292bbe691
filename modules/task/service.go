package task

import (
	"context"
	"fmt"

	domain "github.com/Aqsa-Memon/TODO-APP/domain/task"
	"github.com/go-monolith/mono"
)

// Every handler here trusts the user id in the request: the ownership
// gate already ran at the API boundary, so requests only ever carry
// the authenticated caller's id.

// listTasks handles the task.list service request.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.repo.FindByUser(req.UserID)
	if err != nil {
		return ListTasksResponse{}, err
	}

	resp := ListTasksResponse{Tasks: make([]TaskResponse, 0, len(tasks))}
	for _, task := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(task))
	}
	return resp, nil
}

// createTask handles the task.create service request.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	// Title is required in the request schema but an empty string is
	// accepted; description defaults to empty.
	task := &domain.Task{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := m.repo.Create(task); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}
	return toTaskResponse(task), nil
}

// getTask handles the task.get service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.UserID, req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// updateTask handles the task.update service request. Absent fields
// keep their value; present fields overwrite, even when empty.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.UserID, req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}

	if err := m.repo.Save(task); err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// deleteTask handles the task.delete service request.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.repo.Delete(req.UserID, req.TaskID); err != nil {
		return DeleteTaskResponse{Deleted: false, TaskID: req.TaskID}, err
	}
	return DeleteTaskResponse{Deleted: true, TaskID: req.TaskID}, nil
}

// toggleTask handles the task.toggle service request.
func (m *TaskModule) toggleTask(_ context.Context, req ToggleTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.Toggle(req.UserID, req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}
