// Package controllers holds the HTTP handlers. Each controller decodes and
// validates its request, calls one service method, and writes the standard
// JSON envelope.
package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/helpers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// writeServiceError maps domain sentinel errors to HTTP statuses and logs
// everything else as a 500.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		logger.ErrorContext(ctx, "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
