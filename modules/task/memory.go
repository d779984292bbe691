package task

import (
	"sort"
	"sync"
	"time"

	domain "github.com/Aqsa-Memon/TODO-APP/domain/task"
)

// MemoryRepository is the in-memory task store used by the console
// app. It implements the same capability set as the durable store,
// without persistence.
type MemoryRepository struct {
	mu     sync.Mutex
	tasks  map[uint]*domain.Task
	nextID uint
}

// Compile-time interface check.
var _ domain.Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory task store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tasks:  make(map[uint]*domain.Task),
		nextID: 1,
	}
}

// Create assigns the next id and stores the task.
func (r *MemoryRepository) Create(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	task.ID = r.nextID
	task.CreatedAt = now
	task.UpdatedAt = now
	r.nextID++

	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

// FindByID retrieves a task by id, scoped to its owner.
func (r *MemoryRepository) FindByID(userID, taskID uint) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *task
	return &copied, nil
}

// FindByUser retrieves all tasks owned by a user in insertion order.
func (r *MemoryRepository) FindByUser(userID uint) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]*domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if task.UserID == userID {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// Save overwrites an existing task and refreshes its updated
// timestamp.
func (r *MemoryRepository) Save(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return ErrNotFound
	}

	task.UpdatedAt = time.Now()
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

// Delete removes a task by id, scoped to its owner.
func (r *MemoryRepository) Delete(userID, taskID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return ErrNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

// Toggle flips the completed flag and refreshes the updated timestamp.
func (r *MemoryRepository) Toggle(userID, taskID uint) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, ErrNotFound
	}
	task.Completed = !task.Completed
	task.UpdatedAt = time.Now()
	copied := *task
	return &copied, nil
}
