package router

import (
	"github.com/deppfellow/nested-comments/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the API: health,
// the docs UI and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.StaticFS("/static", handler.StaticFS)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
