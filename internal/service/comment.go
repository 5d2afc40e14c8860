package service

import (
	"context"

	"github.com/deppfellow/nested-comments/internal/errs"
	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/repository"
	"github.com/rs/zerolog"
)

// msgNotCommentOwner is the 401 message when the requesting user edits or deletes
// somebody else's comment.
const msgNotCommentOwner = "You do not have permission to edit this message"

type CommentService struct {
	comments repository.CommentStore
	likes    repository.LikeStore
}

func NewCommentService(comments repository.CommentStore, likes repository.LikeStore) *CommentService {
	return &CommentService{comments: comments, likes: likes}
}

// CreateComment stores a comment by userID. A new comment has no likes, so
// LikeCount and LikedByMe are set without asking the store.
func (s *CommentService) CreateComment(ctx context.Context, userID string, payload *model.CreateCommentPayload) (*model.CommentView, error) {
	created, err := commit(s.comments.Create(ctx, model.NewComment{
		Message:  payload.Message,
		UserID:   userID,
		PostID:   payload.PostID,
		ParentID: payload.ParentID,
	}))
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("comment_id", created.ID).
		Str("post_id", payload.PostID).
		Msg("comment created")

	return &model.CommentView{
		ID:        created.ID,
		Message:   created.Message,
		ParentID:  created.ParentID,
		CreatedAt: created.CreatedAt,
		User:      created.User,
		LikeCount: 0,
		LikedByMe: false,
	}, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, userID string, payload *model.UpdateCommentPayload) (*model.UpdatedComment, error) {
	if err := s.checkOwner(ctx, userID, payload.CommentID); err != nil {
		return nil, err
	}

	message, err := commit(s.comments.UpdateMessage(ctx, payload.CommentID, payload.Message))
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("comment_id", payload.CommentID).Msg("comment updated")

	return &model.UpdatedComment{Message: message}, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, userID string, payload *model.CommentPathPayload) (*model.DeletedComment, error) {
	if err := s.checkOwner(ctx, userID, payload.CommentID); err != nil {
		return nil, err
	}

	id, err := commit(s.comments.Delete(ctx, payload.CommentID))
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("comment_id", id).Msg("comment deleted")

	return &model.DeletedComment{ID: id}, nil
}

// ToggleLike adds userID's like on the comment, or removes it when present.
func (s *CommentService) ToggleLike(ctx context.Context, userID string, payload *model.CommentPathPayload) (*model.LikeToggle, error) {
	like := model.Like{UserID: userID, CommentID: payload.CommentID}

	exists, err := commit(s.likes.Exists(ctx, like))
	if err != nil {
		return nil, err
	}

	if exists {
		if err := commitErr(s.likes.Delete(ctx, like)); err != nil {
			return nil, err
		}
		return &model.LikeToggle{AddLike: false}, nil
	}

	if err := commitErr(s.likes.Create(ctx, like)); err != nil {
		return nil, err
	}
	return &model.LikeToggle{AddLike: true}, nil
}

func (s *CommentService) checkOwner(ctx context.Context, userID, commentID string) error {
	ownerID, err := commit(s.comments.OwnerID(ctx, commentID))
	if err != nil {
		return err
	}

	if ownerID != userID {
		zerolog.Ctx(ctx).Warn().
			Str("comment_id", commentID).
			Str("owner_id", ownerID).
			Msg("rejected change to another user's comment")
		return errs.NewUnauthorizedError(msgNotCommentOwner, true)
	}
	return nil
}
