package task

import (
	"errors"
	"fmt"

	domain "github.com/Aqsa-Memon/TODO-APP/domain/task"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no task with the given id exists for
// the scoped owner.
var ErrNotFound = errors.New("task not found")

// GormRepository is the durable task store backed by GORM.
type GormRepository struct {
	db *gorm.DB
}

// Compile-time interface check.
var _ domain.Repository = (*GormRepository)(nil)

// NewGormRepository creates a new GormRepository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create saves a new task to the database.
func (r *GormRepository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by id, scoped to its owner.
func (r *GormRepository) FindByID(userID, taskID uint) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ? AND user_id = ?", taskID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// FindByUser retrieves all tasks owned by a user.
func (r *GormRepository) FindByUser(userID uint) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.Find(&tasks, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// Save persists all fields of an existing task. GORM refreshes the
// updated timestamp.
func (r *GormRepository) Save(task *domain.Task) error {
	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// Delete removes a task by id, scoped to its owner. Hard delete, no
// tombstone; a second delete of the same id reports ErrNotFound.
func (r *GormRepository) Delete(userID, taskID uint) error {
	result := r.db.Delete(&domain.Task{}, "id = ? AND user_id = ?", taskID, userID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Toggle flips the completed flag and refreshes the updated timestamp.
func (r *GormRepository) Toggle(userID, taskID uint) (*domain.Task, error) {
	task, err := r.FindByID(userID, taskID)
	if err != nil {
		return nil, err
	}
	task.Completed = !task.Completed
	if err := r.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}
