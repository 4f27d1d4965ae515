package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/alexanderramin/lentoflow/internal/contract"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

// decodeJSON decodes the request body into out. An empty body is not a
// client error for endpoints whose request fields are all optional
// (e.g. POST /today/complete/{task_id} with no note or mood).
func decodeJSON(r *http.Request, out any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// writeServiceError maps a contract.Error (or an opaque failure) onto
// the status codes named in spec §7.
func writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *contract.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case contract.ErrNotFound:
			writeJSON(w, http.StatusNotFound, errorBody{Error: svcErr.Message})
		case contract.ErrAlreadyDone:
			writeJSON(w, http.StatusBadRequest, errorBody{Error: svcErr.Message})
		case contract.ErrValidation:
			writeJSON(w, http.StatusBadRequest, errorBody{Error: svcErr.Message})
		case contract.ErrUnauthorized:
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: svcErr.Message})
		case contract.ErrConflictPolicy:
			writeJSON(w, http.StatusConflict, errorBody{Error: svcErr.Message})
		default:
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: svcErr.Message})
		}
		return
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: authErr.Error()})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}
