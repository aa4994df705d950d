package handlers

import (
	"net/http"

	"schoolfeedback/internal/models"
)

type TokenResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) GenerateToken(w http.ResponseWriter, r *http.Request) {
	var req models.LoginStudent
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

// ValidateToken answers with plain text so scripts can check it without a
// JSON parser.
func (h *Handlers) ValidateToken(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateToken
	if !h.decode(w, r, &req) {
		return
	}

	if _, err := h.AuthService.Validate(req.Token); err != nil {
		WriteError(w, MsgUnauthenticated, http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Valid token"))
}
