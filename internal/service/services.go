// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated payloads from handlers, checks ownership, calls the stores and
// shapes the results into response views. Every store call goes through
// commit, so store failures reach the client as one uniform error.
package service

import (
	"github.com/deppfellow/nested-comments/internal/repository"
	"github.com/deppfellow/nested-comments/internal/server"
)

type Services struct {
	User    *UserService
	Post    *PostService
	Comment *CommentService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		User:    NewUserService(s, repos.Users),
		Post:    NewPostService(repos.Posts, repos.Likes),
		Comment: NewCommentService(repos.Comments, repos.Likes),
	}
}
