// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as the
// userId identity cookie, request logging, CORS, rate limiting, tracing and
// panic recovery.
package middleware
