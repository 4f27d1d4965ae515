package domain

import "time"

// Task is a recurring activity owned by a user. LastDoneDate and
// IsCompletedToday are derived from stored Completions by the service
// layer, and Urgency and Health by the algorithm package — they are never
// the source of truth and must not be persisted on the Task row itself.
type Task struct {
	ID               string
	UserID           string
	Name             string
	Description      string
	EnergyCost       int // [1,5]
	ExpectedInterval int // [1,30] days
	Importance       int // [1,5]
	Category         string
	Color            string // "#rrggbb"
	Icon             string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const (
	MinEnergyCost       = 1
	MaxEnergyCost       = 5
	MinExpectedInterval = 1
	MaxExpectedInterval = 30
	MinImportance       = 1
	MaxImportance       = 5
	MaxNameLength       = 100

	DefaultColor = "#6366f1"
	DefaultIcon  = "star"
)

// NormalizedInterval applies the spec's expected_interval<=0 guard: any
// non-positive interval is treated as 1 everywhere in the algorithm.
func NormalizedInterval(expectedInterval int) int {
	if expectedInterval <= 0 {
		return 1
	}
	return expectedInterval
}
