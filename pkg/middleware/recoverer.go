package middleware

import (
	"log/slog"
	"net/http"
)

// Recoverer initializes a recoverer middleware that turns panics within
// a request into logged 500 responses.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("recovered from panic",
						"panic", rvr,
						"method", r.Method,
						"path", r.URL.Path,
					)

					http.Error(
						w,
						http.StatusText(http.StatusInternalServerError),
						http.StatusInternalServerError,
					)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
