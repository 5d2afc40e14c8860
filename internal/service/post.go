package service

import (
	"context"

	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/repository"
	"github.com/rs/zerolog"
)

type PostService struct {
	posts repository.PostStore
	likes repository.LikeStore
}

func NewPostService(posts repository.PostStore, likes repository.LikeStore) *PostService {
	return &PostService{posts: posts, likes: likes}
}

func (s *PostService) ListPosts(ctx context.Context) ([]model.PostSummary, error) {
	return commit(s.posts.List(ctx))
}

// GetPost loads the post with its comments, then the requesting user's
// likes among those comments, and merges the two.
func (s *PostService) GetPost(ctx context.Context, postID, userID string) (*model.PostDetail, error) {
	post, err := commit(s.posts.GetWithComments(ctx, postID))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(post.Comments))
	for _, c := range post.Comments {
		ids = append(ids, c.ID)
	}

	liked, err := commit(s.likes.LikedCommentIDs(ctx, userID, ids))
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("post_id", postID).
		Int("comments", len(post.Comments)).
		Int("liked", len(liked)).
		Msg("loaded post")

	return &model.PostDetail{
		Title:    post.Title,
		Body:     post.Body,
		Comments: shapeComments(post.Comments, liked),
	}, nil
}

// shapeComments keeps the store order and marks the comments whose id is in
// liked.
func shapeComments(comments []model.CommentRecord, liked []string) []model.CommentView {
	likedSet := make(map[string]struct{}, len(liked))
	for _, id := range liked {
		likedSet[id] = struct{}{}
	}

	views := make([]model.CommentView, 0, len(comments))
	for _, c := range comments {
		_, likedByMe := likedSet[c.ID]
		views = append(views, model.CommentView{
			ID:        c.ID,
			Message:   c.Message,
			ParentID:  c.ParentID,
			CreatedAt: c.CreatedAt,
			User:      c.User,
			LikeCount: c.LikeCount,
			LikedByMe: likedByMe,
		})
	}
	return views
}
