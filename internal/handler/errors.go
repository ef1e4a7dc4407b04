package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"docmill/internal/domain"
	"docmill/internal/httputil"
)

// respondDomainError maps domain errors to HTTP responses. Errors that
// implement domain.HTTPError carry their own status code; anything else is
// an unexpected failure and becomes a 500.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), err.Error())
		return
	}

	logger.Error("unexpected error", "error", err)
	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}
