package http

import (
	"net/http"

	"github.com/alexanderramin/lentoflow/internal/service"
)

type userHandler struct {
	users service.UserService
}

func (h *userHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	u, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userSettingsDTO{
		DailyEnergyBudget: u.DailyEnergyBudget, MaxDailyTasks: u.MaxDailyTasks,
	})
}

func (h *userHandler) updateSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	var body userSettingsDTO
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	u, err := h.users.UpdateSettings(r.Context(), userID, body.DailyEnergyBudget, body.MaxDailyTasks)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userSettingsDTO{
		DailyEnergyBudget: u.DailyEnergyBudget, MaxDailyTasks: u.MaxDailyTasks,
	})
}
