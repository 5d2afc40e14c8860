package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/nested-comments/internal/errs"
	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestCommentService_CreateComment(t *testing.T) {
	ctx := context.Background()
	parent := "c1"

	t.Run("creates with zero likes", func(t *testing.T) {
		comments := &mockCommentStore{}
		created := &model.CommentRecord{
			ID:        "c9",
			Message:   "hello",
			ParentID:  &parent,
			CreatedAt: time.Now(),
			User:      model.CommentAuthor{ID: "u1", Name: "John"},
		}
		comments.On("Create", ctx, model.NewComment{
			Message:  "hello",
			UserID:   "u1",
			PostID:   "p1",
			ParentID: &parent,
		}).Return(created, nil)

		view, err := NewCommentService(comments, &mockLikeStore{}).CreateComment(ctx, "u1", &model.CreateCommentPayload{
			PostID:   "p1",
			Message:  "hello",
			ParentID: &parent,
		})
		require.NoError(t, err)

		assert.Equal(t, "c9", view.ID)
		assert.Equal(t, "hello", view.Message)
		assert.Equal(t, &parent, view.ParentID)
		assert.Equal(t, created.User, view.User)
		assert.Equal(t, 0, view.LikeCount)
		assert.False(t, view.LikedByMe)
		comments.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		comments := &mockCommentStore{}
		comments.On("Create", ctx, mock.Anything).Return(nil, errors.New("insert failed"))

		_, err := NewCommentService(comments, &mockLikeStore{}).CreateComment(ctx, "u1", &model.CreateCommentPayload{
			PostID:  "p1",
			Message: "hello",
		})
		requireHTTPError(t, err, http.StatusInternalServerError, "insert failed")
	})
}

func TestCommentService_UpdateComment(t *testing.T) {
	ctx := context.Background()
	payload := &model.UpdateCommentPayload{PostID: "p1", CommentID: "c1", Message: "edited"}

	t.Run("owner can edit", func(t *testing.T) {
		comments := &mockCommentStore{}
		comments.On("OwnerID", ctx, "c1").Return("u1", nil)
		comments.On("UpdateMessage", ctx, "c1", "edited").Return("edited", nil)

		updated, err := NewCommentService(comments, &mockLikeStore{}).UpdateComment(ctx, "u1", payload)
		require.NoError(t, err)
		assert.Equal(t, &model.UpdatedComment{Message: "edited", LikeCount: 0, LikedByMe: false}, updated)
		comments.AssertExpectations(t)
	})

	t.Run("non-owner gets 401 and nothing changes", func(t *testing.T) {
		comments := &mockCommentStore{}
		comments.On("OwnerID", ctx, "c1").Return("u2", nil)

		_, err := NewCommentService(comments, &mockLikeStore{}).UpdateComment(ctx, "u1", payload)
		requireHTTPError(t, err, http.StatusUnauthorized, "You do not have permission to edit this message")
		comments.AssertNotCalled(t, "UpdateMessage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown comment is a store failure", func(t *testing.T) {
		comments := &mockCommentStore{}
		comments.On("OwnerID", ctx, "c1").Return("", repository.NotFound("comments"))

		_, err := NewCommentService(comments, &mockLikeStore{}).UpdateComment(ctx, "u1", payload)
		requireHTTPError(t, err, http.StatusInternalServerError, "Comment not found")
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	ctx := context.Background()
	payload := &model.CommentPathPayload{PostID: "p1", CommentID: "c1"}

	t.Run("owner can delete", func(t *testing.T) {
		comments := &mockCommentStore{}
		comments.On("OwnerID", ctx, "c1").Return("u1", nil)
		comments.On("Delete", ctx, "c1").Return("c1", nil)

		deleted, err := NewCommentService(comments, &mockLikeStore{}).DeleteComment(ctx, "u1", payload)
		require.NoError(t, err)
		assert.Equal(t, "c1", deleted.ID)
	})

	t.Run("non-owner gets 401", func(t *testing.T) {
		comments := &mockCommentStore{}
		comments.On("OwnerID", ctx, "c1").Return("u2", nil)

		_, err := NewCommentService(comments, &mockLikeStore{}).DeleteComment(ctx, "u1", payload)
		requireHTTPError(t, err, http.StatusUnauthorized, "You do not have permission to edit this message")
		comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCommentService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	payload := &model.CommentPathPayload{PostID: "p1", CommentID: "c1"}
	like := model.Like{UserID: "u1", CommentID: "c1"}

	t.Run("adds a missing like", func(t *testing.T) {
		likes := &mockLikeStore{}
		likes.On("Exists", ctx, like).Return(false, nil)
		likes.On("Create", ctx, like).Return(nil)

		toggle, err := NewCommentService(&mockCommentStore{}, likes).ToggleLike(ctx, "u1", payload)
		require.NoError(t, err)
		assert.True(t, toggle.AddLike)
		likes.AssertExpectations(t)
	})

	t.Run("removes an existing like", func(t *testing.T) {
		likes := &mockLikeStore{}
		likes.On("Exists", ctx, like).Return(true, nil)
		likes.On("Delete", ctx, like).Return(nil)

		toggle, err := NewCommentService(&mockCommentStore{}, likes).ToggleLike(ctx, "u1", payload)
		require.NoError(t, err)
		assert.False(t, toggle.AddLike)
		likes.AssertExpectations(t)
	})

	t.Run("insert failure", func(t *testing.T) {
		likes := &mockLikeStore{}
		likes.On("Exists", ctx, like).Return(false, nil)
		likes.On("Create", ctx, like).Return(errors.New("fk violation"))

		_, err := NewCommentService(&mockCommentStore{}, likes).ToggleLike(ctx, "u1", payload)
		requireHTTPError(t, err, http.StatusInternalServerError, "fk violation")
	})
}
