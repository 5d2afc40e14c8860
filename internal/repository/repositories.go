package repository

import (
	"github.com/deppfellow/nested-comments/internal/server"
)

// Repositories groups the stores handed to the service layer.
type Repositories struct {
	Users    UserStore
	Posts    PostStore
	Comments CommentStore
	Likes    LikeStore
}

// NewRepositories builds the PostgreSQL repositories on top of s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(s),
		Posts:    NewPostRepository(s),
		Comments: NewCommentRepository(s),
		Likes:    NewLikeRepository(s),
	}
}
