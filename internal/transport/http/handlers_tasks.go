package http

import (
	"net/http"
	"strconv"

	"github.com/alexanderramin/lentoflow/internal/contract"
	"github.com/alexanderramin/lentoflow/internal/service"
)

type taskHandler struct {
	tasks service.TaskService
}

func (h *taskHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	includeInactive, _ := strconv.ParseBool(r.URL.Query().Get("include_inactive"))

	list, err := h.tasks.List(r.Context(), userID, includeInactive)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponseDTOs(list))
}

func (h *taskHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	var body taskCreateDTO
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	t, err := h.tasks.Create(r.Context(), userID, contract.TaskCreate{
		Name: body.Name, Description: body.Description, EnergyCost: body.EnergyCost,
		ExpectedInterval: body.ExpectedInterval, Importance: body.Importance,
		Category: body.Category, Color: body.Color, Icon: body.Icon,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponseDTO(t))
}

func (h *taskHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	t, err := h.tasks.GetByID(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponseDTO(t))
}

func (h *taskHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	var body taskUpdateDTO
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	t, err := h.tasks.Update(r.Context(), userID, contract.TaskUpdate{
		ID: r.PathValue("id"), Name: body.Name, Description: body.Description,
		EnergyCost: body.EnergyCost, ExpectedInterval: body.ExpectedInterval,
		Importance: body.Importance, Category: body.Category, Color: body.Color,
		Icon: body.Icon, IsActive: body.IsActive,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponseDTO(t))
}

func (h *taskHandler) deactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	if err := h.tasks.Deactivate(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *taskHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrUnauthorized)
		return
	}
	if err := h.tasks.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
