package http

import (
	"net/http"

	"github.com/workhub/workhub/internal/application"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "register", err)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "register", err)
		return
	}
	writeSuccess(w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "login", err)
		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) googleAuth(w http.ResponseWriter, r *http.Request) {
	var req application.GoogleAuthRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "google_auth", err)
		return
	}

	res, err := h.service.GoogleAuth(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "google_auth", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
		return
	}

	user, err := h.service.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		writeMappedError(r.Context(), w, "current_user", err)
		return
	}
	writeSuccess(w, http.StatusOK, user)
}
