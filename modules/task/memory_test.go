package task

import (
	"testing"
	"time"

	domain "github.com/Aqsa-Memon/TODO-APP/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryRepository()

	first := &domain.Task{UserID: 1, Title: "first"}
	second := &domain.Task{UserID: 1, Title: "second"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.WithinDuration(t, first.CreatedAt, first.UpdatedAt, time.Millisecond)
}

func TestMemoryRepository_RoundTrip(t *testing.T) {
	repo := NewMemoryRepository()

	task := &domain.Task{UserID: 1, Title: "t", Description: "d"}
	require.NoError(t, repo.Create(task))

	found, err := repo.FindByID(1, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", found.Title)
	assert.Equal(t, "d", found.Description)
	assert.False(t, found.Completed)

	// Mutating the returned copy must not touch the store.
	found.Title = "mutated"
	again, err := repo.FindByID(1, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", again.Title)
}

func TestMemoryRepository_FindByUserInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()

	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(&domain.Task{UserID: 1, Title: title}))
	}
	require.NoError(t, repo.Create(&domain.Task{UserID: 2, Title: "foreign"}))

	tasks, err := repo.FindByUser(1)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "a", tasks[0].Title)
	assert.Equal(t, "b", tasks[1].Title)
	assert.Equal(t, "c", tasks[2].Title)
}

func TestMemoryRepository_ToggleAndDelete(t *testing.T) {
	repo := NewMemoryRepository()

	task := &domain.Task{UserID: 1, Title: "cycle"}
	require.NoError(t, repo.Create(task))

	toggled, err := repo.Toggle(1, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	back, err := repo.Toggle(1, task.ID)
	require.NoError(t, err)
	assert.False(t, back.Completed)

	require.NoError(t, repo.Delete(1, task.ID))
	_, err = repo.FindByID(1, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(1, task.ID), ErrNotFound)
}

func TestMemoryRepository_SaveUnknownTask(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.Save(&domain.Task{ID: 99, UserID: 1, Title: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_OwnerScoping(t *testing.T) {
	repo := NewMemoryRepository()

	task := &domain.Task{UserID: 1, Title: "mine"}
	require.NoError(t, repo.Create(task))

	_, err := repo.FindByID(2, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(2, task.ID), ErrNotFound)
}
