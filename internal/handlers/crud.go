package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mefdet1/Assignment-5/internal/service"
)

// The helpers below carry the request/response mapping shared by every
// entity handler; the handlers only bind them to their service.

func handleCreate[C, T any](w http.ResponseWriter, r *http.Request, log *slog.Logger, create func(context.Context, C) (*T, error)) {
	var req C
	if err := decodeBody(r, &req); err != nil {
		log.Warn("rejected create payload", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), log)
		return
	}

	created, err := create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, log, err)
		return
	}

	WriteJSON(w, http.StatusOK, created, log)
}

func handleList[T any](w http.ResponseWriter, r *http.Request, log *slog.Logger, list func(context.Context) ([]T, error)) {
	items, err := list(r.Context())
	if err != nil {
		writeServiceError(w, r, log, err)
		return
	}

	WriteJSON(w, http.StatusOK, items, log)
}

func handleGet[T any](w http.ResponseWriter, r *http.Request, log *slog.Logger, get func(context.Context, int64) (*T, error)) {
	id, ok := pathID(r)
	if !ok {
		log.Warn("invalid id", "path", r.URL.Path)
		WriteError(w, http.StatusBadRequest, msgInvalidID, log)
		return
	}

	item, err := get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, log, err)
		return
	}

	WriteJSON(w, http.StatusOK, item, log)
}

func handleUpdate[U, T any](w http.ResponseWriter, r *http.Request, log *slog.Logger, update func(context.Context, int64, U) (*T, error)) {
	id, ok := pathID(r)
	if !ok {
		log.Warn("invalid id", "path", r.URL.Path)
		WriteError(w, http.StatusBadRequest, msgInvalidID, log)
		return
	}

	var req U
	if err := decodeBody(r, &req); err != nil {
		log.Warn("rejected update payload", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), log)
		return
	}

	updated, err := update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, log, err)
		return
	}

	WriteJSON(w, http.StatusOK, updated, log)
}

func handleDelete(w http.ResponseWriter, r *http.Request, log *slog.Logger, entity string, remove func(context.Context, int64) error) {
	id, ok := pathID(r)
	if !ok {
		log.Warn("invalid id", "path", r.URL.Path)
		WriteError(w, http.StatusBadRequest, msgInvalidID, log)
		return
	}

	if err := remove(r.Context(), id); err != nil {
		writeServiceError(w, r, log, err)
		return
	}

	log.Info("entity deleted", "entity", entity, "id", id)
	WriteJSON(w, http.StatusOK, DetailResponse{Detail: entity + " deleted successfully"}, log)
}

// writeServiceError maps service errors to HTTP responses:
// not-found becomes 404 with the entity-named message, anything else 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		log.Info("entity not found", "path", r.URL.Path, "entity", nf.Entity)
		WriteError(w, http.StatusNotFound, nf.Error(), log)
		return
	}

	log.Error("store operation failed", "method", r.Method, "path", r.URL.Path, "error", err)
	WriteError(w, http.StatusInternalServerError, "Internal server error", log)
}
