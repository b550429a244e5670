// Package handler provides HTTP request handlers for DocFold.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/yndnr/docfold-go/internal/core/domain"
)

// handleListFolder handles GET /{folder}.
func (h *Handler) handleListFolder(w http.ResponseWriter, r *http.Request) {
	sess := h.identity(r)
	if sess == nil {
		h.unauthorized(w)
		return
	}

	folder := r.PathValue("folder")
	keys, err := h.docs.List(r.Context(), folder)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.countOp("list")

	// An empty folder must serialize as [], not null.
	if keys == nil {
		keys = []string{}
	}

	h.logger.Info("folder listed", "user", sess.User, "folder", folder, "count", len(keys))
	h.writeJSON(w, http.StatusOK, keys)
}

// handleGetDocument handles GET /{folder}/{file}.
func (h *Handler) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	sess := h.identity(r)
	if sess == nil {
		h.unauthorized(w)
		return
	}

	folder := r.PathValue("folder")
	file := r.PathValue("file")

	data, err := h.docs.Get(r.Context(), folder, file)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.countOp("get")

	h.logger.Info("document read", "user", sess.User, "folder", folder, "file", file)
	h.writeRawJSON(w, http.StatusOK, data)
}

// handlePutDocument handles POST /{folder}/{file}.
func (h *Handler) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	sess := h.identity(r)
	if sess == nil {
		h.unauthorized(w)
		return
	}

	folder := r.PathValue("folder")
	file := r.PathValue("file")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.handleServiceError(w, r, domain.ErrBadRequest.WithCause(err))
		return
	}
	if !json.Valid(body) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.docs.Put(r.Context(), folder, file, body); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.countOp("put")

	h.logger.Info("document saved", "user", sess.User, "folder", folder, "file", file)
	w.WriteHeader(http.StatusOK)
}

// handleDeleteDocument handles DELETE /{folder}/{file}.
//
// Deleting within a missing folder reports success without touching
// anything; only a missing file inside an existing folder is an error.
func (h *Handler) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	sess := h.identity(r)
	if sess == nil {
		h.unauthorized(w)
		return
	}

	folder := r.PathValue("folder")
	file := r.PathValue("file")

	if err := h.docs.Delete(r.Context(), folder, file); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.handleServiceError(w, r, err)
		return
	}
	h.countOp("delete")

	h.logger.Info("document deleted", "user", sess.User, "folder", folder, "file", file)
	w.WriteHeader(http.StatusOK)
}
