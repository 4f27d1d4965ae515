package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lentoflow/internal/domain"
	"github.com/alexanderramin/lentoflow/internal/repository"
	"github.com/alexanderramin/lentoflow/internal/testutil"
)

func newTestTask(t *testing.T, ctx context.Context, users repository.UserRepo, tasks repository.TaskRepo) *domain.Task {
	t.Helper()
	u := newTestUser(t, ctx, users)
	task := &domain.Task{
		ID: uuid.NewString(), UserID: u.ID, Name: "task", EnergyCost: 2,
		ExpectedInterval: 3, Importance: 3, IsActive: true,
	}
	require.NoError(t, tasks.Create(ctx, task))
	return task
}

func TestSQLiteCompletionRepo_EnforcesOnePerTaskPerDay(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)

	task := newTestTask(t, ctx, users, tasks)
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	first := &domain.Completion{ID: uuid.NewString(), TaskID: task.ID, CompletedAt: now}
	require.NoError(t, completions.Create(ctx, first))

	second := &domain.Completion{ID: uuid.NewString(), TaskID: task.ID, CompletedAt: now.Add(8 * time.Hour)}
	err := completions.Create(ctx, second)
	assert.ErrorIs(t, err, repository.ErrAlreadyCompleted)
}

func TestSQLiteCompletionRepo_AllowsCompletionOnDifferentDays(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)

	task := newTestTask(t, ctx, users, tasks)

	day1 := &domain.Completion{ID: uuid.NewString(), TaskID: task.ID, CompletedAt: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	day2 := &domain.Completion{ID: uuid.NewString(), TaskID: task.ID, CompletedAt: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)}
	require.NoError(t, completions.Create(ctx, day1))
	require.NoError(t, completions.Create(ctx, day2))

	last, err := completions.LastByTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, day2.ID, last.ID)
}

func TestSQLiteCompletionRepo_LastByTasks_Batch(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)

	taskA := newTestTask(t, ctx, users, tasks)
	taskB := newTestTask(t, ctx, users, tasks)

	require.NoError(t, completions.Create(ctx, &domain.Completion{
		ID: uuid.NewString(), TaskID: taskA.ID, CompletedAt: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
	}))

	result, err := completions.LastByTasks(ctx, []string{taskA.ID, taskB.ID})
	require.NoError(t, err)
	assert.Contains(t, result, taskA.ID)
	assert.NotContains(t, result, taskB.ID)
}

func TestSQLiteCompletionRepo_Delete_AllowsUndo(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)

	task := newTestTask(t, ctx, users, tasks)
	c := &domain.Completion{ID: uuid.NewString(), TaskID: task.ID, CompletedAt: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	require.NoError(t, completions.Create(ctx, c))
	require.NoError(t, completions.Delete(ctx, c.ID))

	// Same-day completion is now admissible again.
	c2 := &domain.Completion{ID: uuid.NewString(), TaskID: task.ID, CompletedAt: time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)}
	assert.NoError(t, completions.Create(ctx, c2))
}
