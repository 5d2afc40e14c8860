package middleware

import (
	"github.com/deppfellow/nested-comments/internal/server"
)

// Middlewares groups every middleware component, built once and shared by
// the router.
type Middlewares struct {
	Global          *GlobalMiddlewares
	Identity        *IdentityMiddleware
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	RateLimit       *RateLimitMiddleware
}

// NewMiddlewares wires the middleware to s. currentUserID is the identity
// resolved at startup.
func NewMiddlewares(s *server.Server, currentUserID string) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Identity:        NewIdentityMiddleware(currentUserID),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
