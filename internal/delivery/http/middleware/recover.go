package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"noteful/internal/delivery/http/helpers"
)

// Recover turns a handler panic into a logged 500. http.ErrAbortHandler is
// re-panicked so the server can abort the connection as intended.
func Recover(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rv := recover()
			if rv == nil {
				return
			}
			if rv == http.ErrAbortHandler {
				panic(rv)
			}
			logger.ErrorContext(r.Context(), "panic serving request",
				"path", r.URL.Path,
				"method", r.Method,
				"panic", rv,
				"stack", string(debug.Stack()),
			)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, http.StatusText(http.StatusInternalServerError))
		}()
		next.ServeHTTP(w, r)
	})
}
