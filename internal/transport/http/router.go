package http

import (
	"net/http"
	"time"

	"github.com/alexanderramin/lentoflow/internal/service"
)

// Services bundles the service-layer seams the router dispatches to.
// Built once at startup by the `serve` command (internal/cli).
type Services struct {
	Today      service.TodayService
	Completion service.CompletionService
	Tasks      service.TaskService
	Stats      service.StatsService
	Users      service.UserService
}

// NewRouter builds the full spec §6 route table behind auth, a
// net/http.ServeMux with Go 1.22+ method+path patterns. now is injectable
// so tests can pin the clock; production wiring passes time.Now.
func NewRouter(svc Services, auth Authenticator, now func() time.Time) http.Handler {
	if now == nil {
		now = time.Now
	}

	today := &todayHandler{today: svc.Today, completion: svc.Completion, now: now}
	tasks := &taskHandler{tasks: svc.Tasks}
	stats := &statsHandler{stats: svc.Stats, now: now}
	users := &userHandler{users: svc.Users}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /today", withAuth(auth, today.get))
	mux.HandleFunc("POST /today/complete/{task_id}", withAuth(auth, today.complete))
	mux.HandleFunc("DELETE /today/complete/{task_id}", withAuth(auth, today.undo))

	mux.HandleFunc("GET /tasks", withAuth(auth, tasks.list))
	mux.HandleFunc("POST /tasks", withAuth(auth, tasks.create))
	mux.HandleFunc("GET /tasks/{id}", withAuth(auth, tasks.get))
	mux.HandleFunc("PUT /tasks/{id}", withAuth(auth, tasks.update))
	mux.HandleFunc("POST /tasks/{id}/deactivate", withAuth(auth, tasks.deactivate))
	mux.HandleFunc("DELETE /tasks/{id}", withAuth(auth, tasks.delete))

	mux.HandleFunc("GET /stats/daily", withAuth(auth, stats.daily))
	mux.HandleFunc("GET /stats/weekly", withAuth(auth, stats.weekly))
	mux.HandleFunc("GET /stats/monthly", withAuth(auth, stats.monthly))
	mux.HandleFunc("GET /stats/heatmap", withAuth(auth, stats.heatmap))
	mux.HandleFunc("GET /stats/task/{id}", withAuth(auth, stats.task))

	mux.HandleFunc("GET /user/settings", withAuth(auth, users.get))
	mux.HandleFunc("PUT /user/settings", withAuth(auth, users.updateSettings))

	return mux
}
