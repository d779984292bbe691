package task

import (
	"time"
)

// Task is a single to-do item owned by exactly one user.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"not null;type:text" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}

// Repository is the capability set shared by every task store. The
// durable backend and the in-memory console store both implement it.
// All lookups are scoped to the owning user: a task belonging to a
// different user is indistinguishable from a missing one.
type Repository interface {
	Create(task *Task) error
	FindByID(userID, taskID uint) (*Task, error)
	FindByUser(userID uint) ([]*Task, error)
	Save(task *Task) error
	Delete(userID, taskID uint) error
	Toggle(userID, taskID uint) (*Task, error)
}
