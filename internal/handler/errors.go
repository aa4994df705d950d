package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"schoolfeedback/internal/auth"
	"schoolfeedback/internal/repository"
	"schoolfeedback/internal/service"
)

// MsgUnauthenticated is the only text a caller sees for any token failure.
const MsgUnauthenticated = "not authenticated"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Error: message}, statusCode)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps a service error to its status. Store errors other
// than the classified ones are logged and answered with a generic message.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		WriteError(w, MsgUnauthenticated, http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
	case errors.Is(err, auth.ErrForbidden):
		WriteError(w, auth.ErrForbidden.Error(), http.StatusForbidden)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrConflict):
		WriteError(w, "already exists", http.StatusConflict)
	case errors.Is(err, repository.ErrInvalidReference):
		WriteError(w, repository.ErrInvalidReference.Error(), http.StatusBadRequest)
	default:
		h.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		WriteError(w, "bad request", http.StatusBadRequest)
	}
}

// caller returns the identity the auth middleware stored on the request.
func (h *Handlers) caller(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		WriteError(w, MsgUnauthenticated, http.StatusUnauthorized)
	}
	return id, ok
}

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.Validate.Struct(dst); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
