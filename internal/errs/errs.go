// Package errs defines the error shapes returned to API clients.
//
// Every failure a handler can produce (validation, permission, store
// failure) ends up as an *HTTPError so the global error handler can render
// one consistent JSON body.
package errs
