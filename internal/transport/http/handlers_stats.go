package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/lentoflow/internal/service"
)

type statsHandler struct {
	stats service.StatsService
	now   func() time.Time
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (h *statsHandler) daily(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	days := queryInt(r, "days", 7)
	out, err := h.stats.Daily(r.Context(), userID, days, h.now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDailyStatsDTOs(out))
}

func (h *statsHandler) weekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	weeks := queryInt(r, "weeks", 4)
	out, err := h.stats.Weekly(r.Context(), userID, weeks, h.now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toWeeklyStatsDTOs(out))
}

func (h *statsHandler) monthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	months := queryInt(r, "months", 6)
	out, err := h.stats.Monthly(r.Context(), userID, months, h.now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMonthlyStatsDTOs(out))
}

func (h *statsHandler) heatmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	days := queryInt(r, "days", 365)
	out, err := h.stats.Heatmap(r.Context(), userID, days, h.now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHeatmapDataDTO(out))
}

func (h *statsHandler) task(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	out, err := h.stats.TaskStats(r.Context(), userID, r.PathValue("id"), h.now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskStatsDTO(out))
}
