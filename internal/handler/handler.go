// Package handler is the HTTP layer behind the router.
//
// Handlers receive bound and validated payloads through Handle, read the
// effective user id set by the identity middleware, and call the service
// layer.
package handler
