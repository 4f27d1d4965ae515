package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lentoflow/internal/repository"
	"github.com/alexanderramin/lentoflow/internal/testutil"
)

// TestTodayService_FreshUserNoTasks is spec §8 scenario 1.
func TestTodayService_FreshUserNoTasks(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)

	user := seedUser(t, ctx, users, 15, 5)
	svc := NewTodayService(users, tasks, completions)

	view, err := svc.GetTodayView(ctx, user.ID, time.Date(2026, 7, 31, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 15, view.EnergyBudget)
	assert.Equal(t, 0, view.EnergySpent)
	assert.Equal(t, 15, view.EnergyRemaining)
	assert.Empty(t, view.RecommendedTasks)
	assert.Empty(t, view.OtherTasks)
	assert.Equal(t, "empty", view.OverallHealth.Status)
	assert.Equal(t, 100.0, view.OverallHealth.Score)
	assert.Equal(t, "🌱", view.OverallHealth.Icon)
	assert.Equal(t, "添加你的第一个习惯吧！", view.OverallHealth.Message)
	assert.Nil(t, view.DailyScore)
	assert.Equal(t, "新的一天，新的开始！添加你想培养的习惯吧 ✨", view.MotivationalMessage)
}

// TestTodayService_SingleCriticalTask is spec §8 scenario 2.
func TestTodayService_SingleCriticalTask(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	uow := testutil.NewTestUoW(database)

	user := seedUser(t, ctx, users, 15, 5)
	task := seedTask(t, ctx, tasks, user.ID, 3, 2, 5)

	completionSvc := NewCompletionService(uow)
	lastDone := time.Date(2026, 7, 25, 9, 0, 0, 0, time.UTC)
	_, err := completionSvc.MarkDone(ctx, user.ID, task.ID, lastDone, "", nil)
	require.NoError(t, err)

	today := time.Date(2026, 7, 31, 8, 0, 0, 0, time.UTC)
	svc := NewTodayService(users, tasks, completions)
	view, err := svc.GetTodayView(ctx, user.ID, today)
	require.NoError(t, err)

	require.Len(t, view.RecommendedTasks, 1)
	got := view.RecommendedTasks[0]
	assert.Equal(t, "critical", got.UrgencyLevel)
	assert.InDelta(t, 7.51, got.Urgency, 0.01)
	assert.Empty(t, view.OtherTasks)
}

// TestTodayService_DuplicateCompletionRejected is spec §8 scenario 5.
func TestTodayService_DuplicateCompletionRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	uow := testutil.NewTestUoW(database)

	user := seedUser(t, ctx, users, 15, 5)
	task := seedTask(t, ctx, tasks, user.ID, 2, 3, 3)

	completionSvc := NewCompletionService(uow)
	now := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)

	_, err := completionSvc.MarkDone(ctx, user.ID, task.ID, now, "", nil)
	require.NoError(t, err)
	_, err = completionSvc.MarkDone(ctx, user.ID, task.ID, now.Add(time.Hour), "", nil)
	require.Error(t, err)

	all, err := completions.ListByTaskRange(ctx, task.ID, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
