package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/nested-comments/internal/repository"
	"github.com/deppfellow/nested-comments/internal/server"
)

type UserService struct {
	server *server.Server
	users  repository.UserStore
}

func NewUserService(s *server.Server, users repository.UserStore) *UserService {
	return &UserService{server: s, users: users}
}

// ResolveCurrentUser returns the id of the first user called name. It runs
// once at startup; an error means the process must not serve traffic.
func (s *UserService) ResolveCurrentUser(ctx context.Context, name string) (string, error) {
	user, err := s.users.FindFirstByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve current user %q: %w", name, err)
	}

	s.server.Logger.Info().
		Str("user_id", user.ID).
		Str("user_name", user.Name).
		Msg("resolved current user")

	return user.ID, nil
}
