// Package handler provides HTTP request handlers for DocFold.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yndnr/docfold-go/internal/core/domain"
)

// handleAuth handles POST /auth.
func (h *Handler) handleAuth(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	// A malformed body is indistinguishable from unknown credentials
	// on the wire: both yield 401.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == "" {
		h.writeJSON(w, http.StatusUnauthorized, authResponse{
			Auth:    false,
			Message: "User not found",
		})
		return
	}

	err := h.creds.Verify(r.Context(), req.User, req.Password)
	switch {
	case err == nil:
		tok := h.sessions.Issue(req.User)
		h.logger.Info("user logged in", "user", req.User)
		h.writeJSON(w, http.StatusOK, authResponse{
			Auth:    true,
			Message: "Logged in",
			Token:   &tok,
		})

	case errors.Is(err, domain.ErrUserNotFound):
		h.logger.Info("login rejected, user not found", "user", req.User)
		h.writeJSON(w, http.StatusUnauthorized, authResponse{
			Auth:    false,
			Message: "User not found",
		})

	case errors.Is(err, domain.ErrInvalidPassword):
		h.logger.Info("login rejected, invalid password", "user", req.User)
		h.writeJSON(w, http.StatusUnauthorized, authResponse{
			Auth:    false,
			Message: "Invalid password",
		})

	default:
		h.handleServiceError(w, r, err)
	}
}

// handleSignup handles POST /signup.
func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == "" {
		h.writeJSON(w, http.StatusUnauthorized, authResponse{
			Auth:    false,
			Message: "Invalid signup request",
		})
		return
	}

	err := h.creds.Create(r.Context(), req.User, req.Password)
	switch {
	case err == nil:
		tok := h.sessions.Issue(req.User)
		h.logger.Info("user signed up", "user", req.User)
		h.writeJSON(w, http.StatusOK, authResponse{
			Auth:    true,
			Message: "User created",
			Token:   &tok,
		})

	case errors.Is(err, domain.ErrUserExists):
		h.logger.Info("signup rejected, user exists", "user", req.User)
		h.writeJSON(w, http.StatusUnauthorized, authResponse{
			Auth:    false,
			Message: "User already exists",
		})

	default:
		h.handleServiceError(w, r, err)
	}
}

// handleChangePassword handles POST /change-password.
//
// Validation failures answer 301, an oddity older clients depend on.
func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	// A real session is required even when auth enforcement is off;
	// the anonymous identity has no credential record to change.
	sess := h.sessions.Resolve(r.Header.Get("Authorization"), true)
	if sess == nil {
		h.unauthorized(w)
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(statusFromCode(domain.GetErrorCode(domain.ErrChangePasswordRejected)))
		return
	}

	if req.OriginalPassword == "" || req.NewPassword == "" || req.OriginalPassword == req.NewPassword {
		w.WriteHeader(statusFromCode(domain.GetErrorCode(domain.ErrChangePasswordRejected)))
		return
	}

	if err := h.creds.Verify(r.Context(), sess.User, req.OriginalPassword); err != nil {
		if errors.Is(err, domain.ErrInvalidPassword) || errors.Is(err, domain.ErrUserNotFound) {
			h.logger.Info("change-password rejected", "user", sess.User)
			w.WriteHeader(statusFromCode(domain.GetErrorCode(domain.ErrChangePasswordRejected)))
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	if err := h.creds.UpdatePassword(r.Context(), sess.User, req.NewPassword); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.logger.Info("password changed", "user", sess.User)
	h.writeJSON(w, http.StatusOK, changePasswordResponse{
		Auth:    true,
		Message: "Password changed",
	})
}

// handleLogout handles POST /logout.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	tok := r.Header.Get("Authorization")
	if tok == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if !h.sessions.Revoke(tok) {
		h.logger.Info("logout rejected, token not found")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.logger.Info("user logged out")
	w.WriteHeader(http.StatusOK)
}
