package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/server"
	"github.com/jackc/pgx/v5"
)

type PostRepository struct {
	server *server.Server
}

func NewPostRepository(s *server.Server) *PostRepository {
	return &PostRepository{server: s}
}

func (r *PostRepository) List(ctx context.Context) ([]model.PostSummary, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `SELECT id, title FROM posts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.PostSummary{}
	for rows.Next() {
		var p model.PostSummary
		if err := rows.Scan(&p.ID, &p.Title); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

const selectPostSQL = `
	SELECT title, body
	FROM posts
	WHERE id = $1`

const selectPostCommentsSQL = `
	SELECT c.id, c.message, c.parent_id, c.created_at, u.id, u.name, COUNT(l.comment_id)
	FROM comments c
	JOIN users u ON u.id = c.user_id
	LEFT JOIN likes l ON l.comment_id = c.id
	WHERE c.post_id = $1
	GROUP BY c.id, u.id
	ORDER BY c.created_at DESC`

// GetWithComments sends the post and comment selects as one pgx batch, so
// the whole read is a single round-trip.
func (r *PostRepository) GetWithComments(ctx context.Context, postID string) (*model.PostRecord, error) {
	batch := &pgx.Batch{}
	batch.Queue(selectPostSQL, postID)
	batch.Queue(selectPostCommentsSQL, postID)

	results := r.server.DB.Pool.SendBatch(ctx, batch)
	defer results.Close()

	var post model.PostRecord
	err := results.QueryRow().Scan(&post.Title, &post.Body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, NotFound("posts")
	}
	if err != nil {
		return nil, err
	}

	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	post.Comments = []model.CommentRecord{}
	for rows.Next() {
		var c model.CommentRecord
		if err := rows.Scan(&c.ID, &c.Message, &c.ParentID, &c.CreatedAt, &c.User.ID, &c.User.Name, &c.LikeCount); err != nil {
			return nil, err
		}
		post.Comments = append(post.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &post, nil
}
