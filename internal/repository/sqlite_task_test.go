package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lentoflow/internal/domain"
	"github.com/alexanderramin/lentoflow/internal/repository"
	"github.com/alexanderramin/lentoflow/internal/testutil"
)

func newTestUser(t *testing.T, ctx context.Context, users repository.UserRepo) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:                uuid.NewString(),
		Username:          "tester-" + uuid.NewString(),
		Email:             uuid.NewString() + "@example.com",
		PasswordHash:      "hash",
		DailyEnergyBudget: 15,
		MaxDailyTasks:     5,
		Settings:          map[string]any{},
	}
	require.NoError(t, users.Create(ctx, u))
	return u
}

func TestSQLiteTaskRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)

	u := newTestUser(t, ctx, users)

	task := &domain.Task{
		ID:               uuid.NewString(),
		UserID:           u.ID,
		Name:             "跑步",
		EnergyCost:       3,
		ExpectedInterval: 2,
		Importance:       5,
		IsActive:         true,
	}
	require.NoError(t, tasks.Create(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Name, got.Name)
	assert.Equal(t, task.EnergyCost, got.EnergyCost)
	assert.True(t, got.IsActive)
}

func TestSQLiteTaskRepo_ListByUser_ExcludesInactiveByDefault(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)

	u := newTestUser(t, ctx, users)

	active := &domain.Task{ID: uuid.NewString(), UserID: u.ID, Name: "active", EnergyCost: 1, ExpectedInterval: 1, Importance: 1, IsActive: true}
	inactive := &domain.Task{ID: uuid.NewString(), UserID: u.ID, Name: "inactive", EnergyCost: 1, ExpectedInterval: 1, Importance: 1, IsActive: false}
	require.NoError(t, tasks.Create(ctx, active))
	require.NoError(t, tasks.Create(ctx, inactive))

	list, err := tasks.ListByUser(ctx, u.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "active", list[0].Name)

	all, err := tasks.ListByUser(ctx, u.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteTaskRepo_Deactivate(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)

	u := newTestUser(t, ctx, users)
	task := &domain.Task{ID: uuid.NewString(), UserID: u.ID, Name: "t", EnergyCost: 1, ExpectedInterval: 1, Importance: 1, IsActive: true}
	require.NoError(t, tasks.Create(ctx, task))

	require.NoError(t, tasks.Deactivate(ctx, task.ID))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestSQLiteTaskRepo_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)

	_, err := tasks.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
