package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/jackc/pgx/v5"
)

type CommentRepository struct {
	server *server.Server
}

func NewCommentRepository(s *server.Server) *CommentRepository {
	return &CommentRepository{server: s}
}

// Create inserts the comment and selects it back joined with its author.
// A fresh comment has no likes, so LikeCount stays 0.
func (r *CommentRepository) Create(ctx context.Context, comment model.NewComment) (*model.CommentRecord, error) {
	var c model.CommentRecord
	err := r.server.DB.Pool.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO comments (message, user_id, post_id, parent_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id, message, parent_id, created_at, user_id
		)
		SELECT i.id, i.message, i.parent_id, i.created_at, u.id, u.name
		FROM inserted i
		JOIN users u ON u.id = i.user_id`,
		comment.Message, comment.UserID, comment.PostID, comment.ParentID,
	).Scan(&c.ID, &c.Message, &c.ParentID, &c.CreatedAt, &c.User.ID, &c.User.Name)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) OwnerID(ctx context.Context, commentID string) (string, error) {
	var userID string
	err := r.server.DB.Pool.QueryRow(ctx, `SELECT user_id FROM comments WHERE id = $1`, commentID).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", NotFound("comments")
	}
	return userID, err
}

func (r *CommentRepository) UpdateMessage(ctx context.Context, commentID, message string) (string, error) {
	var updated string
	err := r.server.DB.Pool.QueryRow(ctx, `
		UPDATE comments
		SET message = $2, updated_at = now()
		WHERE id = $1
		RETURNING message`, commentID, message).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", NotFound("comments")
	}
	return updated, err
}

// Delete removes the comment; replies and likes go with it (ON DELETE CASCADE).
func (r *CommentRepository) Delete(ctx context.Context, commentID string) (string, error) {
	var id string
	err := r.server.DB.Pool.QueryRow(ctx, `DELETE FROM comments WHERE id = $1 RETURNING id`, commentID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", NotFound("comments")
	}
	return id, err
}
