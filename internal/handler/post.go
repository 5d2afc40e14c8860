package handler

import (
	"github.com/deppfellow/nested-comments/internal/middleware"
	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/deppfellow/nested-comments/internal/service"
	"github.com/labstack/echo/v4"
)

type PostHandler struct {
	Handler
	posts *service.PostService
}

func NewPostHandler(s *server.Server, posts *service.PostService) *PostHandler {
	return &PostHandler{
		Handler: NewHandler(s),
		posts:   posts,
	}
}

func (h *PostHandler) ListPosts(c echo.Context, _ *model.ListPostsPayload) ([]model.PostSummary, error) {
	return h.posts.ListPosts(c.Request().Context())
}

func (h *PostHandler) GetPost(c echo.Context, req *model.GetPostPayload) (*model.PostDetail, error) {
	return h.posts.GetPost(c.Request().Context(), req.ID, middleware.GetUserID(c))
}
