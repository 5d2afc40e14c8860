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

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns store order", func(t *testing.T) {
		posts := &mockPostStore{}
		want := []model.PostSummary{{ID: "b", Title: "B"}, {ID: "a", Title: "A"}}
		posts.On("List", ctx).Return(want, nil)

		got, err := NewPostService(posts, &mockLikeStore{}).ListPosts(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		posts.AssertExpectations(t)
	})

	t.Run("store failure becomes 500 with store message", func(t *testing.T) {
		posts := &mockPostStore{}
		posts.On("List", ctx).Return(nil, errors.New("connection refused"))

		_, err := NewPostService(posts, &mockLikeStore{}).ListPosts(ctx)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "connection refused", httpErr.Message)
	})
}

func TestPostService_GetPost(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	parent := "c1"

	record := &model.PostRecord{
		Title: "Post 1",
		Body:  "Body",
		Comments: []model.CommentRecord{
			{ID: "c2", Message: "reply", ParentID: &parent, CreatedAt: now, User: model.CommentAuthor{ID: "u2", Name: "Sally"}, LikeCount: 0},
			{ID: "c1", Message: "root", CreatedAt: now.Add(-time.Hour), User: model.CommentAuthor{ID: "u1", Name: "John"}, LikeCount: 3},
		},
	}

	t.Run("merges liked ids into comments", func(t *testing.T) {
		posts := &mockPostStore{}
		likes := &mockLikeStore{}
		posts.On("GetWithComments", ctx, "p1").Return(record, nil)
		likes.On("LikedCommentIDs", ctx, "u1", []string{"c2", "c1"}).Return([]string{"c1"}, nil)

		detail, err := NewPostService(posts, likes).GetPost(ctx, "p1", "u1")
		require.NoError(t, err)

		assert.Equal(t, "Post 1", detail.Title)
		assert.Equal(t, "Body", detail.Body)
		require.Len(t, detail.Comments, 2)

		assert.Equal(t, "c2", detail.Comments[0].ID)
		assert.Equal(t, &parent, detail.Comments[0].ParentID)
		assert.False(t, detail.Comments[0].LikedByMe)
		assert.Equal(t, 0, detail.Comments[0].LikeCount)

		assert.Equal(t, "c1", detail.Comments[1].ID)
		assert.Nil(t, detail.Comments[1].ParentID)
		assert.True(t, detail.Comments[1].LikedByMe)
		assert.Equal(t, 3, detail.Comments[1].LikeCount)

		posts.AssertExpectations(t)
		likes.AssertExpectations(t)
	})

	t.Run("missing post skips the like query", func(t *testing.T) {
		posts := &mockPostStore{}
		likes := &mockLikeStore{}
		posts.On("GetWithComments", ctx, "missing").Return(nil, repository.NotFound("posts"))

		_, err := NewPostService(posts, likes).GetPost(ctx, "missing", "u1")

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Post not found", httpErr.Message)
		assert.Equal(t, "POST_NOT_FOUND", httpErr.Code)
		likes.AssertNotCalled(t, "LikedCommentIDs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("like query failure", func(t *testing.T) {
		posts := &mockPostStore{}
		likes := &mockLikeStore{}
		posts.On("GetWithComments", ctx, "p1").Return(record, nil)
		likes.On("LikedCommentIDs", ctx, "u1", mock.Anything).Return(nil, errors.New("timeout"))

		_, err := NewPostService(posts, likes).GetPost(ctx, "p1", "u1")

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "timeout", httpErr.Message)
	})
}

func TestShapeComments(t *testing.T) {
	assert.Empty(t, shapeComments(nil, nil))
	assert.NotNil(t, shapeComments(nil, nil))

	views := shapeComments([]model.CommentRecord{{ID: "a"}, {ID: "b"}}, []string{"b", "unknown"})
	require.Len(t, views, 2)
	assert.False(t, views[0].LikedByMe)
	assert.True(t, views[1].LikedByMe)
}
