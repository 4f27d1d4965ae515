package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lentoflow/internal/algorithm"
	"github.com/alexanderramin/lentoflow/internal/clock"
	"github.com/alexanderramin/lentoflow/internal/contract"
	"github.com/alexanderramin/lentoflow/internal/repository"
)

// todayService composes the today-view snapshot (spec §4.9) from stored
// tasks and completions. It performs no mutation; it is the read path
// that sits in front of the pure internal/algorithm core.
type todayService struct {
	users       repository.UserRepo
	tasks       repository.TaskRepo
	completions repository.CompletionRepo
}

func NewTodayService(users repository.UserRepo, tasks repository.TaskRepo, completions repository.CompletionRepo) TodayService {
	return &todayService{users: users, tasks: tasks, completions: completions}
}

func (s *todayService) GetTodayView(ctx context.Context, userID string, now time.Time) (*contract.TodayView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}

	today := clock.Today(clock.Fixed{At: now}, now.Location())

	states, err := loadAnnotatedStates(ctx, s.tasks, s.completions, userID, today)
	if err != nil {
		return nil, err
	}

	recommended, others := algorithm.Recommend(states, user.DailyEnergyBudget, user.MaxDailyTasks)
	snap := buildDailySnapshot(states, user.DailyEnergyBudget)

	var dailyScoreView *contract.DailyScoreView
	if len(states) > 0 {
		dailyScoreView = &contract.DailyScoreView{
			BaseScore:   snap.score.BaseScore,
			UrgentBonus: snap.score.UrgentBonus,
			TotalScore:  snap.score.TotalScore,
			EnergySpent: snap.score.EnergySpent,
			TasksDone:   snap.score.TasksDone,
			Grade:       string(snap.score.Grade),
			Message:     snap.score.Message,
		}
	}

	mostUrgent := algorithm.MostUrgent(states)
	message := algorithm.DailyMessage(snap.aggregate.Score, len(states), mostUrgent, today)

	return &contract.TodayView{
		Date:             today,
		EnergyBudget:     user.DailyEnergyBudget,
		EnergySpent:      snap.energySpent,
		EnergyRemaining:  user.DailyEnergyBudget - snap.energySpent,
		RecommendedTasks: toTaskViews(recommended, today),
		OtherTasks:       toTaskViews(others, today),
		OverallHealth: contract.HealthView{
			Score:   snap.aggregate.Score,
			Status:  string(snap.aggregate.Status),
			Icon:    snap.aggregate.Icon,
			Message: snap.aggregate.Message,
		},
		DailyScore:          dailyScoreView,
		MotivationalMessage: message,
	}, nil
}

func toTaskViews(states []algorithm.TaskState, today time.Time) []contract.TaskView {
	views := make([]contract.TaskView, len(states))
	for i, s := range states {
		daysSince := 0
		if s.LastDoneDate != nil {
			daysSince = int(today.Sub(*s.LastDoneDate).Hours() / 24)
		}
		views[i] = contract.TaskView{
			ID:               s.ID,
			Name:             s.Name,
			EnergyCost:       s.EnergyCost,
			Urgency:          s.Urgency,
			UrgencyLevel:     string(algorithm.Level(s.Urgency)),
			Health:           s.Health,
			LastDone:         s.LastDoneDate,
			DaysSince:        daysSince,
			ExpectedInterval: s.ExpectedInterval,
			IsCompletedToday: s.IsCompletedToday,
			Icon:             s.Icon,
			Color:            s.Color,
		}
	}
	return views
}
