package http

import (
	"time"

	"github.com/alexanderramin/lentoflow/internal/contract"
	"github.com/alexanderramin/lentoflow/internal/domain"
)

// The types in this file are the wire shapes for spec §6's JSON bodies.
// internal/contract stays a plain Go-idiomatic layer (no struct tags);
// this file is the only place that knows the external field names.

type taskViewDTO struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	EnergyCost       int        `json:"energy_cost"`
	Urgency          float64    `json:"urgency"`
	UrgencyLevel     string     `json:"urgency_level"`
	Health           int        `json:"health"`
	LastDone         *time.Time `json:"last_done"`
	DaysSince        int        `json:"days_since"`
	ExpectedInterval int        `json:"expected_interval"`
	IsCompletedToday bool       `json:"is_completed_today"`
	Icon             string     `json:"icon"`
	Color            string     `json:"color"`
}

func toTaskViewDTO(v contract.TaskView) taskViewDTO {
	return taskViewDTO{
		ID: v.ID, Name: v.Name, EnergyCost: v.EnergyCost, Urgency: v.Urgency,
		UrgencyLevel: v.UrgencyLevel, Health: v.Health, LastDone: v.LastDone,
		DaysSince: v.DaysSince, ExpectedInterval: v.ExpectedInterval,
		IsCompletedToday: v.IsCompletedToday, Icon: v.Icon, Color: v.Color,
	}
}

func toTaskViewDTOs(vs []contract.TaskView) []taskViewDTO {
	out := make([]taskViewDTO, len(vs))
	for i, v := range vs {
		out[i] = toTaskViewDTO(v)
	}
	return out
}

type healthViewDTO struct {
	Score   float64 `json:"score"`
	Status  string  `json:"status"`
	Icon    string  `json:"icon"`
	Message string  `json:"message"`
}

type dailyScoreViewDTO struct {
	BaseScore   float64 `json:"base"`
	UrgentBonus float64 `json:"urgent_bonus"`
	TotalScore  float64 `json:"total"`
	EnergySpent int     `json:"energy_spent"`
	TasksDone   int     `json:"tasks_done"`
	Grade       string  `json:"grade"`
	Message     string  `json:"message"`
}

type todayViewDTO struct {
	Date                string             `json:"date"`
	EnergyBudget        int                `json:"energy_budget"`
	EnergySpent         int                `json:"energy_spent"`
	EnergyRemaining     int                `json:"energy_remaining"`
	RecommendedTasks    []taskViewDTO      `json:"recommended_tasks"`
	OtherTasks          []taskViewDTO      `json:"other_tasks"`
	OverallHealth       healthViewDTO      `json:"overall_health"`
	DailyScore          *dailyScoreViewDTO `json:"daily_score"`
	MotivationalMessage string             `json:"motivational_message"`
}

func toTodayViewDTO(v *contract.TodayView) todayViewDTO {
	var score *dailyScoreViewDTO
	if v.DailyScore != nil {
		score = &dailyScoreViewDTO{
			BaseScore: v.DailyScore.BaseScore, UrgentBonus: v.DailyScore.UrgentBonus,
			TotalScore: v.DailyScore.TotalScore, EnergySpent: v.DailyScore.EnergySpent,
			TasksDone: v.DailyScore.TasksDone, Grade: v.DailyScore.Grade, Message: v.DailyScore.Message,
		}
	}
	return todayViewDTO{
		Date:             v.Date.Format("2006-01-02"),
		EnergyBudget:     v.EnergyBudget,
		EnergySpent:      v.EnergySpent,
		EnergyRemaining:  v.EnergyRemaining,
		RecommendedTasks: toTaskViewDTOs(v.RecommendedTasks),
		OtherTasks:       toTaskViewDTOs(v.OtherTasks),
		OverallHealth: healthViewDTO{
			Score: v.OverallHealth.Score, Status: v.OverallHealth.Status,
			Icon: v.OverallHealth.Icon, Message: v.OverallHealth.Message,
		},
		DailyScore:          score,
		MotivationalMessage: v.MotivationalMessage,
	}
}

type completeTaskRequestDTO struct {
	Note string `json:"note"`
	Mood *int   `json:"mood"`
}

type completeTaskResponseDTO struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CompletionID string `json:"completion_id,omitempty"`
}

type taskCreateDTO struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	EnergyCost       int    `json:"energy_cost"`
	ExpectedInterval int    `json:"expected_interval"`
	Importance       int    `json:"importance"`
	Category         string `json:"category"`
	Color            string `json:"color"`
	Icon             string `json:"icon"`
}

type taskUpdateDTO struct {
	taskCreateDTO
	IsActive bool `json:"is_active"`
}

type taskResponseDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	EnergyCost       int    `json:"energy_cost"`
	ExpectedInterval int    `json:"expected_interval"`
	Importance       int    `json:"importance"`
	Category         string `json:"category"`
	Color            string `json:"color"`
	Icon             string `json:"icon"`
	IsActive         bool   `json:"is_active"`
}

func toTaskResponseDTO(t *domain.Task) taskResponseDTO {
	return taskResponseDTO{
		ID: t.ID, Name: t.Name, Description: t.Description, EnergyCost: t.EnergyCost,
		ExpectedInterval: t.ExpectedInterval, Importance: t.Importance, Category: t.Category,
		Color: t.Color, Icon: t.Icon, IsActive: t.IsActive,
	}
}

func toTaskResponseDTOs(tasks []*domain.Task) []taskResponseDTO {
	out := make([]taskResponseDTO, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponseDTO(t)
	}
	return out
}

type userSettingsDTO struct {
	DailyEnergyBudget int `json:"daily_energy_budget"`
	MaxDailyTasks     int `json:"max_daily_tasks"`
}

type dailyStatsDTO struct {
	Date           string   `json:"date"`
	EnergySpent    int      `json:"energy_spent"`
	TasksCompleted int      `json:"tasks_completed"`
	DailyScore     *float64 `json:"daily_score"`
	OverallHealth  *float64 `json:"overall_health"`
}

func toDailyStatsDTOs(in []contract.DailyStats) []dailyStatsDTO {
	out := make([]dailyStatsDTO, len(in))
	for i, d := range in {
		out[i] = dailyStatsDTO{
			Date: d.Date.Format("2006-01-02"), EnergySpent: d.EnergySpent,
			TasksCompleted: d.TasksCompleted, DailyScore: d.DailyScore, OverallHealth: d.OverallHealth,
		}
	}
	return out
}

type weeklyStatsDTO struct {
	WeekStart           string  `json:"week_start"`
	WeekEnd             string  `json:"week_end"`
	TotalEnergySpent    int     `json:"total_energy_spent"`
	TotalTasksCompleted int     `json:"total_tasks_completed"`
	AverageDailyScore   float64 `json:"average_daily_score"`
	AverageHealth       float64 `json:"average_health"`
	CompletionRate      float64 `json:"completion_rate"`
}

func toWeeklyStatsDTOs(in []contract.WeeklyStats) []weeklyStatsDTO {
	out := make([]weeklyStatsDTO, len(in))
	for i, w := range in {
		out[i] = weeklyStatsDTO{
			WeekStart: w.WeekStart.Format("2006-01-02"), WeekEnd: w.WeekEnd.Format("2006-01-02"),
			TotalEnergySpent: w.TotalEnergySpent, TotalTasksCompleted: w.TotalTasksCompleted,
			AverageDailyScore: w.AverageDailyScore, AverageHealth: w.AverageHealth,
			CompletionRate: w.CompletionRate,
		}
	}
	return out
}

type monthlyStatsDTO struct {
	Month               int     `json:"month"`
	Year                int     `json:"year"`
	TotalEnergySpent    int     `json:"total_energy_spent"`
	TotalTasksCompleted int     `json:"total_tasks_completed"`
	AverageDailyScore   float64 `json:"average_daily_score"`
	AverageHealth       float64 `json:"average_health"`
	CompletionRate      float64 `json:"completion_rate"`
	ActiveDays          int     `json:"active_days"`
}

func toMonthlyStatsDTOs(in []contract.MonthlyStats) []monthlyStatsDTO {
	out := make([]monthlyStatsDTO, len(in))
	for i, m := range in {
		out[i] = monthlyStatsDTO{
			Month: m.Month, Year: m.Year, TotalEnergySpent: m.TotalEnergySpent,
			TotalTasksCompleted: m.TotalTasksCompleted, AverageDailyScore: m.AverageDailyScore,
			AverageHealth: m.AverageHealth, CompletionRate: m.CompletionRate, ActiveDays: m.ActiveDays,
		}
	}
	return out
}

type heatmapEntryDTO struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

type heatmapDataDTO struct {
	Data     []heatmapEntryDTO `json:"data"`
	MinValue int               `json:"min_value"`
	MaxValue int               `json:"max_value"`
}

func toHeatmapDataDTO(in *contract.HeatmapData) heatmapDataDTO {
	data := make([]heatmapEntryDTO, len(in.Data))
	for i, e := range in.Data {
		data[i] = heatmapEntryDTO{Date: e.Date.Format("2006-01-02"), Value: e.Value}
	}
	return heatmapDataDTO{Data: data, MinValue: in.MinValue, MaxValue: in.MaxValue}
}

type taskStatsDTO struct {
	TaskID           string     `json:"task_id"`
	TaskName         string     `json:"task_name"`
	TotalCompletions int        `json:"total_completions"`
	LongestStreak    int        `json:"longest_streak"`
	CurrentStreak    int        `json:"current_streak"`
	CompletionRate   float64    `json:"completion_rate"`
	AverageHealth    float64    `json:"average_health"`
	LastCompleted    *time.Time `json:"last_completed"`
}

func toTaskStatsDTO(in *contract.TaskStats) taskStatsDTO {
	return taskStatsDTO{
		TaskID: in.TaskID, TaskName: in.TaskName, TotalCompletions: in.TotalCompletions,
		LongestStreak: in.LongestStreak, CurrentStreak: in.CurrentStreak,
		CompletionRate: in.CompletionRate, AverageHealth: in.AverageHealth, LastCompleted: in.LastCompleted,
	}
}
