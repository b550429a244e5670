// Package handler provides HTTP request handlers for DocFold.
package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/yndnr/docfold-go/internal/core/domain"
)

// handleGetTodos handles GET /todos. A user with no stored list gets
// an empty array, not an error.
func (h *Handler) handleGetTodos(w http.ResponseWriter, r *http.Request) {
	sess := h.identity(r)
	if sess == nil {
		h.unauthorized(w)
		return
	}

	data, err := h.todos.Get(r.Context(), sess.User)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.countOp("get")

	h.logger.Info("todos read", "user", sess.User)
	h.writeRawJSON(w, http.StatusOK, data)
}

// handlePutTodos handles POST /todos.
func (h *Handler) handlePutTodos(w http.ResponseWriter, r *http.Request) {
	sess := h.identity(r)
	if sess == nil {
		h.unauthorized(w)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.handleServiceError(w, r, domain.ErrBadRequest.WithCause(err))
		return
	}
	if !json.Valid(body) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.todos.Put(r.Context(), sess.User, body); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.countOp("put")

	h.logger.Info("todos saved", "user", sess.User)
	w.WriteHeader(http.StatusOK)
}
