package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lentoflow/internal/repository"
	"github.com/alexanderramin/lentoflow/internal/testutil"
)

func TestSQLiteUserRepo_CreateAndGetByUsername(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)

	u := newTestUser(t, ctx, users)

	got, err := users.GetByUsername(ctx, u.Username)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.DailyEnergyBudget, got.DailyEnergyBudget)
	assert.NotZero(t, got.CreatedAt)
}

func TestSQLiteUserRepo_Update(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)

	u := newTestUser(t, ctx, users)
	u.DailyEnergyBudget = 25
	u.MaxDailyTasks = 9
	u.Settings = map[string]any{"theme": "dark"}
	require.NoError(t, users.Update(ctx, u))

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.DailyEnergyBudget)
	assert.Equal(t, 9, got.MaxDailyTasks)
	assert.Equal(t, "dark", got.Settings["theme"])
}

func TestSQLiteUserRepo_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)

	_, err := users.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLiteUserRepo_GetByUsername_NotFound(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)

	_, err := users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
