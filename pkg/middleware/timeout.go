package middleware

import (
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Timeout cancels the request context after a minute.
var Timeout = middleware.Timeout(60 * time.Second)
