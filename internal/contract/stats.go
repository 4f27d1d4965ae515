package contract

import "time"

// DailyStats is one day's entry in GET /stats/daily, back-filled with
// zero values for days that have no DailyLog row (spec §9 Stats rollups).
type DailyStats struct {
	Date           time.Time
	EnergySpent    int
	TasksCompleted int
	DailyScore     *float64
	OverallHealth  *float64
}

// WeeklyStats is one seven-day window's rollup in GET /stats/weekly. The
// windows are rolling, the newest ending today, not calendar (Mon-Sun) weeks.
// CompletionRate uses the source's total_expected = tasks*days
// simplification (spec §9), not per-task expected_interval.
type WeeklyStats struct {
	WeekStart           time.Time
	WeekEnd             time.Time
	TotalEnergySpent    int
	TotalTasksCompleted int
	AverageDailyScore   float64
	AverageHealth       float64
	CompletionRate      float64
}

// MonthlyStats is one calendar month's rollup in GET /stats/monthly.
type MonthlyStats struct {
	Month               int
	Year                int
	TotalEnergySpent    int
	TotalTasksCompleted int
	AverageDailyScore   float64
	AverageHealth       float64
	CompletionRate      float64
	ActiveDays          int
}

// HeatmapEntry is a single day's completion count for GET /stats/heatmap.
type HeatmapEntry struct {
	Date  time.Time
	Value int
}

// HeatmapData is the full response of GET /stats/heatmap.
type HeatmapData struct {
	Data     []HeatmapEntry
	MinValue int
	MaxValue int
}

// TaskStats is the response of GET /stats/task/{id}.
type TaskStats struct {
	TaskID            string
	TaskName          string
	TotalCompletions  int
	LongestStreak     int
	CurrentStreak     int
	CompletionRate    float64
	AverageHealth     float64
	LastCompleted     *time.Time
}
