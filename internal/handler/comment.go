package handler

import (
	"github.com/deppfellow/nested-comments/internal/middleware"
	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/deppfellow/nested-comments/internal/service"
	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	Handler
	comments *service.CommentService
}

func NewCommentHandler(s *server.Server, comments *service.CommentService) *CommentHandler {
	return &CommentHandler{
		Handler:  NewHandler(s),
		comments: comments,
	}
}

func (h *CommentHandler) CreateComment(c echo.Context, req *model.CreateCommentPayload) (*model.CommentView, error) {
	return h.comments.CreateComment(c.Request().Context(), middleware.GetUserID(c), req)
}

func (h *CommentHandler) UpdateComment(c echo.Context, req *model.UpdateCommentPayload) (*model.UpdatedComment, error) {
	return h.comments.UpdateComment(c.Request().Context(), middleware.GetUserID(c), req)
}

func (h *CommentHandler) DeleteComment(c echo.Context, req *model.CommentPathPayload) (*model.DeletedComment, error) {
	return h.comments.DeleteComment(c.Request().Context(), middleware.GetUserID(c), req)
}

func (h *CommentHandler) ToggleLike(c echo.Context, req *model.CommentPathPayload) (*model.LikeToggle, error) {
	return h.comments.ToggleLike(c.Request().Context(), middleware.GetUserID(c), req)
}
