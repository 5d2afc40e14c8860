package service

import (
	"context"

	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/stretchr/testify/mock"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindFirstByName(ctx context.Context, name string) (*model.User, error) {
	args := m.Called(ctx, name)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type mockPostStore struct {
	mock.Mock
}

func (m *mockPostStore) List(ctx context.Context) ([]model.PostSummary, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]model.PostSummary)
	return posts, args.Error(1)
}

func (m *mockPostStore) GetWithComments(ctx context.Context, postID string) (*model.PostRecord, error) {
	args := m.Called(ctx, postID)
	post, _ := args.Get(0).(*model.PostRecord)
	return post, args.Error(1)
}

type mockCommentStore struct {
	mock.Mock
}

func (m *mockCommentStore) Create(ctx context.Context, comment model.NewComment) (*model.CommentRecord, error) {
	args := m.Called(ctx, comment)
	record, _ := args.Get(0).(*model.CommentRecord)
	return record, args.Error(1)
}

func (m *mockCommentStore) OwnerID(ctx context.Context, commentID string) (string, error) {
	args := m.Called(ctx, commentID)
	return args.String(0), args.Error(1)
}

func (m *mockCommentStore) UpdateMessage(ctx context.Context, commentID, message string) (string, error) {
	args := m.Called(ctx, commentID, message)
	return args.String(0), args.Error(1)
}

func (m *mockCommentStore) Delete(ctx context.Context, commentID string) (string, error) {
	args := m.Called(ctx, commentID)
	return args.String(0), args.Error(1)
}

type mockLikeStore struct {
	mock.Mock
}

func (m *mockLikeStore) LikedCommentIDs(ctx context.Context, userID string, commentIDs []string) ([]string, error) {
	args := m.Called(ctx, userID, commentIDs)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *mockLikeStore) Exists(ctx context.Context, like model.Like) (bool, error) {
	args := m.Called(ctx, like)
	return args.Bool(0), args.Error(1)
}

func (m *mockLikeStore) Create(ctx context.Context, like model.Like) error {
	return m.Called(ctx, like).Error(0)
}

func (m *mockLikeStore) Delete(ctx context.Context, like model.Like) error {
	return m.Called(ctx, like).Error(0)
}
