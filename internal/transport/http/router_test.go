package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lentoflow/internal/db"
	"github.com/alexanderramin/lentoflow/internal/domain"
	"github.com/alexanderramin/lentoflow/internal/repository"
	"github.com/alexanderramin/lentoflow/internal/service"
	"github.com/alexanderramin/lentoflow/internal/testutil"
)

func newTestRouter(t *testing.T, userID string, now time.Time) http.Handler {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	dailyLogs := repository.NewSQLiteDailyLogRepo(database)

	svc := Services{
		Today:      service.NewTodayService(users, tasks, completions),
		Completion: service.NewCompletionService(uow),
		Tasks:      service.NewTaskService(tasks),
		Stats:      service.NewStatsService(tasks, completions, dailyLogs),
		Users:      service.NewUserService(users),
	}

	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &domain.User{
		ID: userID, Username: "u-" + userID, Email: "u@example.com", PasswordHash: "x",
		DailyEnergyBudget: 15, MaxDailyTasks: 5, Settings: map[string]any{},
	}))

	return NewRouter(svc, StaticAuthenticator{UserID: userID}, func() time.Time { return now })
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_TodayEmpty(t *testing.T) {
	now := time.Date(2026, 7, 31, 8, 0, 0, 0, time.UTC)
	h := newTestRouter(t, uuid.New().String(), now)

	rec := doRequest(h, "GET", "/today", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view todayViewDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 15, view.EnergyBudget)
	assert.Empty(t, view.RecommendedTasks)
}

func TestRouter_RejectsMissingBearerToken(t *testing.T) {
	h := newTestRouter(t, uuid.New().String(), time.Now())
	req := httptest.NewRequest("GET", "/today", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_CreateAndCompleteTask(t *testing.T) {
	now := time.Date(2026, 7, 31, 8, 0, 0, 0, time.UTC)
	h := newTestRouter(t, uuid.New().String(), now)

	createBody := `{"name":"Stretch","energy_cost":2,"expected_interval":1,"importance":3}`
	rec := doRequest(h, "POST", "/tasks", createBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created taskResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Stretch", created.Name)
	assert.True(t, created.IsActive)

	rec = doRequest(h, "POST", "/today/complete/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var completed completeTaskResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	assert.True(t, completed.Success)
	assert.NotEmpty(t, completed.CompletionID)

	rec = doRequest(h, "POST", "/today/complete/"+created.ID, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, "DELETE", "/today/complete/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UpdateUserSettings(t *testing.T) {
	h := newTestRouter(t, uuid.New().String(), time.Now())

	rec := doRequest(h, "PUT", "/user/settings", `{"daily_energy_budget":25,"max_daily_tasks":9}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings userSettingsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, 25, settings.DailyEnergyBudget)
	assert.Equal(t, 9, settings.MaxDailyTasks)

	rec = doRequest(h, "PUT", "/user/settings", `{"daily_energy_budget":99,"max_daily_tasks":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
