// Package router builds the Echo instance: it installs the middleware
// chain and maps the API routes to their handlers.
package router

import (
	"net/http"

	"github.com/deppfellow/nested-comments/internal/handler"
	"github.com/deppfellow/nested-comments/internal/middleware"
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(
		m.RateLimit.Limit(),
		m.Global.CORS(),
		m.Global.Secure(),
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.Identity.EnsureUserCookie(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
	)

	registerSystemRoutes(r, h)
	registerPostRoutes(r, h)

	return r
}

func registerPostRoutes(r *echo.Echo, h *handler.Handlers) {
	posts := r.Group("/posts")

	posts.GET("", handler.Handle(h.Post.Handler, h.Post.ListPosts, http.StatusOK))
	posts.GET("/:id", handler.Handle(h.Post.Handler, h.Post.GetPost, http.StatusOK))

	posts.POST("/:id/comments", handler.Handle(h.Comment.Handler, h.Comment.CreateComment, http.StatusCreated))
	posts.PUT("/:postId/comments/:commentId", handler.Handle(h.Comment.Handler, h.Comment.UpdateComment, http.StatusOK))
	posts.DELETE("/:postId/comments/:commentId", handler.Handle(h.Comment.Handler, h.Comment.DeleteComment, http.StatusOK))
	posts.POST("/:postId/comments/:commentId/toggleLike", handler.Handle(h.Comment.Handler, h.Comment.ToggleLike, http.StatusOK))
}
