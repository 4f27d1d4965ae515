package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/lentoflow/internal/algorithm"
	"github.com/alexanderramin/lentoflow/internal/domain"
	"github.com/alexanderramin/lentoflow/internal/repository"
)

// loadAnnotatedStates loads a user's active tasks and their most recent
// completions and returns them as algorithm.TaskState values with
// Urgency, Health and IsCompletedToday already computed for today. It is
// the shared read path behind the today view (todayService) and the
// daily-log cache write-back (completionService).
func loadAnnotatedStates(ctx context.Context, tasks repository.TaskRepo, completions repository.CompletionRepo, userID string, today time.Time) ([]algorithm.TaskState, error) {
	activeTasks, err := tasks.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	taskIDs := make([]string, len(activeTasks))
	for i, t := range activeTasks {
		taskIDs[i] = t.ID
	}
	lastCompletions, err := completions.LastByTasks(ctx, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("loading last completions: %w", err)
	}

	states := make([]algorithm.TaskState, len(activeTasks))
	for i, t := range activeTasks {
		state := algorithm.TaskState{
			ID:               t.ID,
			Name:             t.Name,
			EnergyCost:       t.EnergyCost,
			ExpectedInterval: t.ExpectedInterval,
			Importance:       t.Importance,
			Color:            t.Color,
			Icon:             t.Icon,
		}
		if last, ok := lastCompletions[t.ID]; ok {
			d := last.LocalDate()
			state.LastDoneDate = &d
			state.IsCompletedToday = sameDay(d, today)
		}
		states[i] = state
	}
	algorithm.Annotate(states, today)
	return states, nil
}

// dailySnapshot holds the pieces of a day's view that also belong in the
// DailyLog cache row (spec §3): energy spent, tasks completed, the day's
// score and the aggregate health as of that day.
type dailySnapshot struct {
	completedToday []algorithm.TaskState
	energySpent    int
	score          algorithm.DailyScore
	aggregate      algorithm.AggregateHealth
}

func buildDailySnapshot(states []algorithm.TaskState, dailyEnergyBudget int) dailySnapshot {
	var completedToday []algorithm.TaskState
	energySpent := 0
	for _, st := range states {
		if st.IsCompletedToday {
			completedToday = append(completedToday, st)
			energySpent += st.EnergyCost
		}
	}
	return dailySnapshot{
		completedToday: completedToday,
		energySpent:    energySpent,
		score:          algorithm.ScoreDay(completedToday, dailyEnergyBudget),
		aggregate:      algorithm.Aggregate(states),
	}
}

// upsertDailyLog recomputes and caches the DailyLog row for (userID,
// today) from freshly loaded state. It is called from within the same
// transaction that mark_done/undo_done run in, so the cache a stats
// query later reads never lags the Completions it was derived from.
func upsertDailyLog(ctx context.Context, tasks repository.TaskRepo, completions repository.CompletionRepo, dailyLogs repository.DailyLogRepo, userID string, dailyEnergyBudget int, today time.Time) error {
	states, err := loadAnnotatedStates(ctx, tasks, completions, userID, today)
	if err != nil {
		return err
	}
	snap := buildDailySnapshot(states, dailyEnergyBudget)

	score := snap.score.TotalScore
	health := snap.aggregate.Score
	return dailyLogs.Upsert(ctx, &domain.DailyLog{
		ID:             uuid.New().String(),
		UserID:         userID,
		LogDate:        today,
		EnergySpent:    snap.energySpent,
		TasksCompleted: len(snap.completedToday),
		DailyScore:     &score,
		OverallHealth:  &health,
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
