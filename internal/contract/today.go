package contract

import "time"

// TaskView is the read-only projection of a task plus its algorithm-derived
// quantities, as emitted on the today view and task lists (spec §4.9).
type TaskView struct {
	ID               string
	Name             string
	EnergyCost       int
	Urgency          float64
	UrgencyLevel     string
	Health           int
	LastDone         *time.Time
	DaysSince        int
	ExpectedInterval int
	IsCompletedToday bool
	Icon             string
	Color            string
}

// TodayView is the full snapshot contract for GET /today.
type TodayView struct {
	Date                time.Time
	EnergyBudget        int
	EnergySpent         int
	EnergyRemaining     int
	RecommendedTasks    []TaskView
	OtherTasks          []TaskView
	OverallHealth       HealthView
	DailyScore          *DailyScoreView
	MotivationalMessage string
}

// HealthView mirrors algorithm.AggregateHealth for transport.
type HealthView struct {
	Score   float64
	Status  string
	Icon    string
	Message string
}

// DailyScoreView mirrors algorithm.DailyScore for transport.
type DailyScoreView struct {
	BaseScore   float64
	UrgentBonus float64
	TotalScore  float64
	EnergySpent int
	TasksDone   int
	Grade       string
	Message     string
}

// CompleteTaskRequest is the body of POST /today/complete/{task_id}.
type CompleteTaskRequest struct {
	Note string
	Mood *int
}

// CompleteTaskResponse is the response of POST/DELETE /today/complete/{task_id}.
type CompleteTaskResponse struct {
	Success      bool
	Message      string
	CompletionID string
}
