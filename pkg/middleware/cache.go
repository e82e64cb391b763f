package middleware

import (
	"net/http"
	"time"
)

// Cache writes required cache headers to all responses to keep scrapers
// and browsers from caching stale metrics.
func Cache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, private, max-age=0")
		w.Header().Set("Expires", time.Unix(0, 0).Format(http.TimeFormat))
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("X-Accel-Expires", "0")

		next.ServeHTTP(w, r)
	})
}
