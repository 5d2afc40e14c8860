package handler

import (
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/deppfellow/nested-comments/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Post    *PostHandler
	Comment *CommentHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Post:    NewPostHandler(s, services.Post),
		Comment: NewCommentHandler(s, services.Comment),
	}
}
