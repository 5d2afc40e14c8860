package service

import (
	"context"
	"testing"

	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/repository"
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_ResolveCurrentUser(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()
	s := &server.Server{Logger: &logger}

	t.Run("found", func(t *testing.T) {
		users := &mockUserStore{}
		users.On("FindFirstByName", ctx, "John").Return(&model.User{ID: "u1", Name: "John"}, nil)

		id, err := NewUserService(s, users).ResolveCurrentUser(ctx, "John")
		require.NoError(t, err)
		assert.Equal(t, "u1", id)
	})

	t.Run("missing user", func(t *testing.T) {
		users := &mockUserStore{}
		users.On("FindFirstByName", ctx, "John").Return(nil, repository.NotFound("users"))

		_, err := NewUserService(s, users).ResolveCurrentUser(ctx, "John")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"John"`)
	})
}
