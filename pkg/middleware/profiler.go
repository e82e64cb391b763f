package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Profiler mounts the pprof handlers provided by chi.
func Profiler() http.Handler {
	return middleware.Profiler()
}
