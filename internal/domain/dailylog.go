package domain

import "time"

// DailyLog is an optional per-(user,date) rollup, derivable from
// Completions and used as a cache for history endpoints (spec §3). It is
// never the source of truth for derived algorithm quantities.
type DailyLog struct {
	ID             string
	UserID         string
	LogDate        time.Time
	EnergySpent    int
	TasksCompleted int
	DailyScore     *float64
	OverallHealth  *float64
	Note           string
}
