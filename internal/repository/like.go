package repository

import (
	"context"

	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/server"
)

type LikeRepository struct {
	server *server.Server
}

func NewLikeRepository(s *server.Server) *LikeRepository {
	return &LikeRepository{server: s}
}

// LikedCommentIDs takes the ids as text[] and casts them, so malformed ids
// fail in Postgres like every other uuid parameter.
func (r *LikeRepository) LikedCommentIDs(ctx context.Context, userID string, commentIDs []string) ([]string, error) {
	liked := []string{}
	if len(commentIDs) == 0 {
		return liked, nil
	}

	rows, err := r.server.DB.Pool.Query(ctx, `
		SELECT comment_id
		FROM likes
		WHERE user_id = $1 AND comment_id = ANY($2::text[]::uuid[])`, userID, commentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		liked = append(liked, id)
	}
	return liked, rows.Err()
}

func (r *LikeRepository) Exists(ctx context.Context, like model.Like) (bool, error) {
	var exists bool
	err := r.server.DB.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM likes WHERE user_id = $1 AND comment_id = $2
		)`, like.UserID, like.CommentID).Scan(&exists)
	return exists, err
}

func (r *LikeRepository) Create(ctx context.Context, like model.Like) error {
	_, err := r.server.DB.Pool.Exec(ctx, `
		INSERT INTO likes (user_id, comment_id)
		VALUES ($1, $2)`, like.UserID, like.CommentID)
	return err
}

func (r *LikeRepository) Delete(ctx context.Context, like model.Like) error {
	_, err := r.server.DB.Pool.Exec(ctx, `
		DELETE FROM likes
		WHERE user_id = $1 AND comment_id = $2`, like.UserID, like.CommentID)
	return err
}
