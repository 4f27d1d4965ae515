package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/lentoflow/internal/algorithm"
	"github.com/alexanderramin/lentoflow/internal/clock"
	"github.com/alexanderramin/lentoflow/internal/contract"
	"github.com/alexanderramin/lentoflow/internal/domain"
	"github.com/alexanderramin/lentoflow/internal/repository"
)

type statsService struct {
	tasks       repository.TaskRepo
	completions repository.CompletionRepo
	dailyLogs   repository.DailyLogRepo
}

func NewStatsService(tasks repository.TaskRepo, completions repository.CompletionRepo, dailyLogs repository.DailyLogRepo) StatsService {
	return &statsService{tasks: tasks, completions: completions, dailyLogs: dailyLogs}
}

func (s *statsService) Daily(ctx context.Context, userID string, days int, now time.Time) ([]contract.DailyStats, error) {
	today := clock.Today(clock.Fixed{At: now}, now.Location())
	start := today.AddDate(0, 0, -(days - 1))

	logs, err := s.dailyLogs.ListByUserRange(ctx, userID, start, today)
	if err != nil {
		return nil, fmt.Errorf("loading daily logs: %w", err)
	}
	byDate := make(map[string]int)
	for i, l := range logs {
		byDate[l.LogDate.Format("2006-01-02")] = i
	}

	out := make([]contract.DailyStats, 0, days)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		if idx, ok := byDate[d.Format("2006-01-02")]; ok {
			l := logs[idx]
			out = append(out, contract.DailyStats{
				Date: d, EnergySpent: l.EnergySpent, TasksCompleted: l.TasksCompleted,
				DailyScore: l.DailyScore, OverallHealth: l.OverallHealth,
			})
			continue
		}
		out = append(out, contract.DailyStats{Date: d})
	}
	return out, nil
}

func (s *statsService) Weekly(ctx context.Context, userID string, weeks int, now time.Time) ([]contract.WeeklyStats, error) {
	today := clock.Today(clock.Fixed{At: now}, now.Location())
	tasks, err := s.tasks.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	out := make([]contract.WeeklyStats, 0, weeks)
	for i := 0; i < weeks; i++ {
		weekEnd := today.AddDate(0, 0, -7*i)
		weekStart := weekEnd.AddDate(0, 0, -6)

		completions, err := s.completions.ListByUserRange(ctx, userID, weekStart, weekEnd)
		if err != nil {
			return nil, fmt.Errorf("loading completions: %w", err)
		}
		energySpent, count := sumEnergy(tasks, completions)

		avgHealth := s.averageHealthAsOf(tasks, completions, weekEnd)

		// total_expected = tasks*days, ignoring per-task expected_interval —
		// preserved deliberately for parity with the original rollup.
		totalExpected := len(tasks) * 7
		rate := 0.0
		if totalExpected > 0 {
			rate = float64(count) / float64(totalExpected)
		}

		logs, err := s.dailyLogs.ListByUserRange(ctx, userID, weekStart, weekEnd)
		if err != nil {
			return nil, fmt.Errorf("loading daily logs: %w", err)
		}
		avgScore := averageDailyScore(logs)

		out = append(out, contract.WeeklyStats{
			WeekStart: weekStart, WeekEnd: weekEnd,
			TotalEnergySpent: energySpent, TotalTasksCompleted: count,
			AverageDailyScore: round1(avgScore), AverageHealth: round1(avgHealth),
			CompletionRate: round2Stats(rate),
		})
	}
	return out, nil
}

func (s *statsService) Monthly(ctx context.Context, userID string, months int, now time.Time) ([]contract.MonthlyStats, error) {
	today := clock.Today(clock.Fixed{At: now}, now.Location())
	tasks, err := s.tasks.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	out := make([]contract.MonthlyStats, 0, months)
	for i := 0; i < months; i++ {
		year, month := today.Year(), int(today.Month())-i
		for month <= 0 {
			month += 12
			year--
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, today.Location())
		end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)

		completions, err := s.completions.ListByUserRange(ctx, userID, start, end)
		if err != nil {
			return nil, fmt.Errorf("loading completions: %w", err)
		}
		energySpent, count := sumEnergy(tasks, completions)

		activeDates := make(map[string]bool)
		for _, c := range completions {
			activeDates[c.LocalDate().Format("2006-01-02")] = true
		}

		avgHealth := s.averageHealthAsOf(tasks, completions, end)

		days := int(end.Sub(start).Hours()/24) + 1
		totalExpected := len(tasks) * days
		rate := 0.0
		if totalExpected > 0 {
			rate = float64(count) / float64(totalExpected)
		}

		logs, err := s.dailyLogs.ListByUserRange(ctx, userID, start, end)
		if err != nil {
			return nil, fmt.Errorf("loading daily logs: %w", err)
		}
		avgScore := averageDailyScore(logs)

		out = append(out, contract.MonthlyStats{
			Month: month, Year: year,
			TotalEnergySpent: energySpent, TotalTasksCompleted: count,
			AverageDailyScore: round1(avgScore), AverageHealth: round1(avgHealth),
			CompletionRate: round2Stats(rate), ActiveDays: len(activeDates),
		})
	}
	return out, nil
}

func (s *statsService) Heatmap(ctx context.Context, userID string, days int, now time.Time) (*contract.HeatmapData, error) {
	today := clock.Today(clock.Fixed{At: now}, now.Location())
	start := today.AddDate(0, 0, -(days - 1))

	entries, err := s.completions.Heatmap(ctx, userID, start, today)
	if err != nil {
		return nil, fmt.Errorf("loading heatmap: %w", err)
	}
	byDate := make(map[string]int, len(entries))
	for _, e := range entries {
		byDate[e.Date.Format("2006-01-02")] = e.Count
	}

	data := make([]contract.HeatmapEntry, 0, days)
	maxValue := 0
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		v := byDate[d.Format("2006-01-02")]
		data = append(data, contract.HeatmapEntry{Date: d, Value: v})
		if v > maxValue {
			maxValue = v
		}
	}
	return &contract.HeatmapData{Data: data, MinValue: 0, MaxValue: maxValue}, nil
}

func (s *statsService) TaskStats(ctx context.Context, userID, taskID string, now time.Time) (*contract.TaskStats, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, contract.NewError(contract.ErrNotFound, "task not found")
		}
		return nil, err
	}
	if t.UserID != userID {
		return nil, contract.NewError(contract.ErrNotFound, "task not found")
	}

	today := clock.Today(clock.Fixed{At: now}, now.Location())
	completions, err := s.completions.ListByTaskRange(ctx, taskID, t.CreatedAt, today)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}

	longest, current := streaks(completions, today)

	var lastCompleted *time.Time
	var avgHealth float64
	if len(completions) > 0 {
		last := completions[len(completions)-1].LocalDate()
		lastCompleted = &last
		avgHealth = float64(algorithm.Health(&last, t.ExpectedInterval, today))
	}

	expected := float64(today.Sub(t.CreatedAt).Hours()/24) / float64(domain.NormalizedInterval(t.ExpectedInterval))
	rate := 0.0
	if expected > 0 {
		rate = float64(len(completions)) / expected
	}

	return &contract.TaskStats{
		TaskID: t.ID, TaskName: t.Name,
		TotalCompletions: len(completions), LongestStreak: longest, CurrentStreak: current,
		CompletionRate: round2Stats(rate), AverageHealth: round1(avgHealth), LastCompleted: lastCompleted,
	}, nil
}

func sumEnergy(tasks []*domain.Task, completions []*domain.Completion) (energySpent, count int) {
	byID := make(map[string]int, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t.EnergyCost
	}
	for _, c := range completions {
		energySpent += byID[c.TaskID]
	}
	return energySpent, len(completions)
}

func (s *statsService) averageHealthAsOf(tasks []*domain.Task, completions []*domain.Completion, asOf time.Time) float64 {
	lastByTask := make(map[string]time.Time)
	for _, c := range completions {
		d := c.LocalDate()
		if !d.After(asOf) {
			if cur, ok := lastByTask[c.TaskID]; !ok || d.After(cur) {
				lastByTask[c.TaskID] = d
			}
		}
	}

	states := make([]algorithm.TaskState, len(tasks))
	for i, t := range tasks {
		st := algorithm.TaskState{Importance: t.Importance}
		if d, ok := lastByTask[t.ID]; ok {
			last := d
			st.Health = algorithm.Health(&last, t.ExpectedInterval, asOf)
		} else {
			st.Health = algorithm.Health(nil, t.ExpectedInterval, asOf)
		}
		states[i] = st
	}
	return algorithm.Aggregate(states).Score
}

func averageDailyScore(logs []*domain.DailyLog) float64 {
	sum, n := 0.0, 0
	for _, l := range logs {
		if l.DailyScore != nil {
			sum += *l.DailyScore
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func streaks(completions []*domain.Completion, today time.Time) (longest, current int) {
	if len(completions) == 0 {
		return 0, 0
	}
	dates := make([]time.Time, len(completions))
	for i, c := range completions {
		dates[i] = c.LocalDate()
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]).Hours()/24 == 1 {
			streak++
			if streak > longest {
				longest = streak
			}
		} else {
			streak = 1
		}
	}
	if streak > longest {
		longest = streak
	}

	if sameDay(dates[len(dates)-1], today) {
		current = 1
		for i := len(dates) - 2; i >= 0; i-- {
			if dates[i+1].Sub(dates[i]).Hours()/24 == 1 {
				current++
			} else {
				break
			}
		}
	}
	return longest, current
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2Stats(v float64) float64 { return math.Round(v*100) / 100 }
