package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/lentoflow/internal/domain"
)

// TaskCompletionCount pairs a task ID with how many completions it has
// in a given window, used by stats queries.
type TaskCompletionCount struct {
	TaskID string
	Count  int
}

// HeatmapEntry is a single day's completion count, used to render the
// yearly activity heatmap.
type HeatmapEntry struct {
	Date  time.Time
	Count int
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string, includeInactive bool) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CompletionRepo interface {
	// Create inserts a completion. Returns ErrAlreadyCompleted if one
	// already exists for (TaskID, local date of CompletedAt).
	Create(ctx context.Context, c *domain.Completion) error
	GetByID(ctx context.Context, id string) (*domain.Completion, error)
	// GetByTaskAndDate finds the completion (if any) for a task on a
	// specific local calendar day.
	GetByTaskAndDate(ctx context.Context, taskID string, localDate time.Time) (*domain.Completion, error)
	// LastByTask returns the most recent completion for a task, or
	// ErrNotFound if the task has never been completed.
	LastByTask(ctx context.Context, taskID string) (*domain.Completion, error)
	// LastByTasks batches LastByTask across many tasks in one query,
	// keyed by task ID; tasks with no completion are absent from the map.
	LastByTasks(ctx context.Context, taskIDs []string) (map[string]*domain.Completion, error)
	ListByTaskRange(ctx context.Context, taskID string, from, to time.Time) ([]*domain.Completion, error)
	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Completion, error)
	CountByTaskRange(ctx context.Context, userID string, from, to time.Time) ([]TaskCompletionCount, error)
	Heatmap(ctx context.Context, userID string, from, to time.Time) ([]HeatmapEntry, error)
	Delete(ctx context.Context, id string) error
}

type DailyLogRepo interface {
	Upsert(ctx context.Context, l *domain.DailyLog) error
	GetByUserAndDate(ctx context.Context, userID string, logDate time.Time) (*domain.DailyLog, error)
	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyLog, error)
}
