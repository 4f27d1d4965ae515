// Package cli wires the lentoflow service layer into a cobra command
// tree: `lentoflow serve` runs the HTTP API, `lentoflow today` prints (or
// renders, interactively) the recommendation dashboard for the local
// user, and `lentoflow tasks` is a small CRUD surface for habits.
package cli

import (
	"time"

	"github.com/alexanderramin/lentoflow/internal/service"
)

// App holds references to all service interfaces used by CLI commands,
// plus the handful of process-level seams (clock, local user) a
// single-user CLI binary needs that an HTTP server takes from request
// context instead.
type App struct {
	Today      service.TodayService
	Completion service.CompletionService
	Tasks      service.TaskService
	Stats      service.StatsService
	Users      service.UserService

	// UserID is the local single-user account the CLI operates as.
	UserID string
	// Now returns the current instant; overridden by tests.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
