package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	domain "github.com/Aqsa-Memon/TODO-APP/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TaskModule provides owner-scoped task CRUD services.
type TaskModule struct {
	db     *gorm.DB
	repo   domain.Repository
	dbPath string
}

// Compile-time interface checks.
var _ mono.Module = (*TaskModule)(nil)
var _ mono.ServiceProviderModule = (*TaskModule)(nil)
var _ mono.HealthCheckableModule = (*TaskModule)(nil)

// NewModule creates a new TaskModule.
func NewModule() *TaskModule {
	dbPath := os.Getenv("TODO_DB_PATH")
	if dbPath == "" {
		dbPath = "todo.db"
	}
	return &TaskModule{dbPath: dbPath}
}

// Name returns the module name.
func (m *TaskModule) Name() string {
	return "task"
}

// Start opens the database and wires the task repository.
func (m *TaskModule) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.repo = NewGormRepository(db)

	log.Printf("[task] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop shuts down the module.
func (m *TaskModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[task] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *TaskModule) Health(_ context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *TaskModule) RegisterServices(container mono.ServiceContainer) error {
	services := []struct {
		name     string
		register func() error
	}{
		{ServiceList, func() error {
			return helper.RegisterTypedRequestReplyService(container, ServiceList, json.Unmarshal, json.Marshal, m.listTasks)
		}},
		{ServiceCreate, func() error {
			return helper.RegisterTypedRequestReplyService(container, ServiceCreate, json.Unmarshal, json.Marshal, m.createTask)
		}},
		{ServiceGet, func() error {
			return helper.RegisterTypedRequestReplyService(container, ServiceGet, json.Unmarshal, json.Marshal, m.getTask)
		}},
		{ServiceUpdate, func() error {
			return helper.RegisterTypedRequestReplyService(container, ServiceUpdate, json.Unmarshal, json.Marshal, m.updateTask)
		}},
		{ServiceDelete, func() error {
			return helper.RegisterTypedRequestReplyService(container, ServiceDelete, json.Unmarshal, json.Marshal, m.deleteTask)
		}},
		{ServiceToggle, func() error {
			return helper.RegisterTypedRequestReplyService(container, ServiceToggle, json.Unmarshal, json.Marshal, m.toggleTask)
		}},
	}

	for _, svc := range services {
		if err := svc.register(); err != nil {
			return fmt.Errorf("failed to register %s service: %w", svc.name, err)
		}
	}

	log.Printf("[task] Registered services: list, create, get, update, delete, toggle")
	return nil
}
