package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lentoflow/internal/contract"
	"github.com/alexanderramin/lentoflow/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, userID string, in contract.TaskCreate) (*domain.Task, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, userID string, includeInactive bool) ([]*domain.Task, error)
	Update(ctx context.Context, userID string, in contract.TaskUpdate) (*domain.Task, error)
	Deactivate(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
}

// UserService implements the policy-owner surface of spec §3 (User) not
// covered by the core algorithm: registration is an external
// collaborator's concern, but the daily_energy_budget/max_daily_tasks
// policy mutation named in §3 ("policy mutated by owner only") needs a
// seam, added per SPEC_FULL.md's UserSettings supplement.
type UserService interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateSettings(ctx context.Context, userID string, dailyEnergyBudget, maxDailyTasks int) (*domain.User, error)
}

type CompletionService interface {
	MarkDone(ctx context.Context, userID, taskID string, now time.Time, note string, mood *int) (*domain.Completion, error)
	UndoDone(ctx context.Context, userID, taskID string, now time.Time) error
}

type TodayService interface {
	GetTodayView(ctx context.Context, userID string, now time.Time) (*contract.TodayView, error)
}

type StatsService interface {
	Daily(ctx context.Context, userID string, days int, now time.Time) ([]contract.DailyStats, error)
	Weekly(ctx context.Context, userID string, weeks int, now time.Time) ([]contract.WeeklyStats, error)
	Monthly(ctx context.Context, userID string, months int, now time.Time) ([]contract.MonthlyStats, error)
	Heatmap(ctx context.Context, userID string, days int, now time.Time) (*contract.HeatmapData, error)
	TaskStats(ctx context.Context, userID, taskID string, now time.Time) (*contract.TaskStats, error)
}
