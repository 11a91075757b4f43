package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/service"
	"github.com/aussiebroadwan/hoaboard/pkg/httpx"
	"github.com/aussiebroadwan/hoaboard/pkg/slogx"
)

const (
	codeInvalidRequest = "invalid_request"
	codeServerError    = "server_error"
)

// statusFor maps a failure kind onto an HTTP status.
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindConflict:
		return http.StatusConflict
	case service.KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the status for err's kind. Internal causes
// are logged and never leave the process.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	if kind == service.KindInternal {
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, codeServerError, "internal server error")
		return
	}

	var se *service.Error
	errors.As(err, &se)
	httpx.WriteError(w, statusFor(kind), se.Code, se.Msg)
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteError(w, http.StatusBadRequest, codeInvalidRequest, desc)
}

// decode reads the JSON body into v and answers 400 when it is malformed.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		writeBadRequest(w, "invalid JSON in request body")
		return false
	}
	return true
}
