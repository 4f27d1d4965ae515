package http

import (
	"net/http"
	"time"

	"github.com/alexanderramin/lentoflow/internal/service"
)

type todayHandler struct {
	today      service.TodayService
	completion service.CompletionService
	now        func() time.Time
}

func (h *todayHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	view, err := h.today.GetTodayView(r.Context(), userID, h.now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodayViewDTO(view))
}

func (h *todayHandler) complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	taskID := r.PathValue("task_id")

	var body completeTaskRequestDTO
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	c, err := h.completion.MarkDone(r.Context(), userID, taskID, h.now(), body.Note, body.Mood)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, completeTaskResponseDTO{
		Success: true, Message: "completed", CompletionID: c.ID,
	})
}

func (h *todayHandler) undo(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	taskID := r.PathValue("task_id")

	if err := h.completion.UndoDone(r.Context(), userID, taskID, h.now()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, completeTaskResponseDTO{Success: true, Message: "undone"})
}
