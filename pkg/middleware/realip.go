package middleware

import (
	"github.com/go-chi/chi/v5/middleware"
)

// RealIP just wraps the equally named chi middleware.
var RealIP = middleware.RealIP
