package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	server *server.Server
}

func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{server: s}
}

func (r *UserRepository) FindFirstByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.server.DB.Pool.QueryRow(ctx, `
		SELECT id, name
		FROM users
		WHERE name = $1
		LIMIT 1`, name).Scan(&user.ID, &user.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, NotFound("users")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
