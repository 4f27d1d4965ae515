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

func TestSQLiteDailyLogRepo_UpsertInsertsThenUpdates(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	logs := repository.NewSQLiteDailyLogRepo(database)

	u := newTestUser(t, ctx, users)
	day := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	score := 12.5
	require.NoError(t, logs.Upsert(ctx, &domain.DailyLog{
		ID: uuid.NewString(), UserID: u.ID, LogDate: day,
		EnergySpent: 3, TasksCompleted: 1, DailyScore: &score,
	}))

	got, err := logs.GetByUserAndDate(ctx, u.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 3, got.EnergySpent)
	assert.Equal(t, 1, got.TasksCompleted)
	require.NotNil(t, got.DailyScore)
	assert.InDelta(t, 12.5, *got.DailyScore, 0.001)

	updatedScore := 20.0
	require.NoError(t, logs.Upsert(ctx, &domain.DailyLog{
		ID: uuid.NewString(), UserID: u.ID, LogDate: day,
		EnergySpent: 5, TasksCompleted: 2, DailyScore: &updatedScore,
	}))

	got, err = logs.GetByUserAndDate(ctx, u.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 5, got.EnergySpent)
	assert.Equal(t, 2, got.TasksCompleted)
	assert.InDelta(t, 20.0, *got.DailyScore, 0.001)
}

func TestSQLiteDailyLogRepo_ListByUserRange(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	logs := repository.NewSQLiteDailyLogRepo(database)

	u := newTestUser(t, ctx, users)
	base := time.Date(2026, 7, 28, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		day := base.AddDate(0, 0, i)
		require.NoError(t, logs.Upsert(ctx, &domain.DailyLog{
			ID: uuid.NewString(), UserID: u.ID, LogDate: day, EnergySpent: i, TasksCompleted: i,
		}))
	}

	out, err := logs.ListByUserRange(ctx, u.ID, base, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.True(t, out[0].LogDate.Equal(base))
}

func TestSQLiteDailyLogRepo_GetByUserAndDate_NotFound(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	logs := repository.NewSQLiteDailyLogRepo(database)

	u := newTestUser(t, ctx, users)
	_, err := logs.GetByUserAndDate(ctx, u.ID, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
