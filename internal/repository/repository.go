// Package repository handles all interactions with the data store.
//
// It defines the narrow store interfaces the service layer depends on and
// their PostgreSQL implementations (raw SQL over the shared pgx pool).
// An in-memory implementation lives in repository/memory.
package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// UserStore reads users.
type UserStore interface {
	// FindFirstByName returns the first user with the given name.
	FindFirstByName(ctx context.Context, name string) (*model.User, error)
}

// PostStore reads posts.
type PostStore interface {
	// List returns every post as {id, title}.
	List(ctx context.Context) ([]model.PostSummary, error)

	// GetWithComments returns the post with its comments, newest first,
	// each carrying its like count.
	GetWithComments(ctx context.Context, postID string) (*model.PostRecord, error)
}

// CommentStore creates, edits and deletes comments.
type CommentStore interface {
	Create(ctx context.Context, comment model.NewComment) (*model.CommentRecord, error)

	// OwnerID returns the id of the user who wrote the comment.
	OwnerID(ctx context.Context, commentID string) (string, error)

	// UpdateMessage replaces the message and returns the stored value.
	UpdateMessage(ctx context.Context, commentID, message string) (string, error)

	// Delete removes the comment and returns its id.
	Delete(ctx context.Context, commentID string) (string, error)
}

// LikeStore reads and writes like rows.
type LikeStore interface {
	// LikedCommentIDs returns the subset of commentIDs liked by userID.
	LikedCommentIDs(ctx context.Context, userID string, commentIDs []string) ([]string, error)

	Exists(ctx context.Context, like model.Like) (bool, error)
	Create(ctx context.Context, like model.Like) error
	Delete(ctx context.Context, like model.Like) error
}

// NotFound returns the error repositories use for a missing row in table.
//
// It wraps pgx.ErrNoRows with the table name so sqlerr.HandleError can
// produce e.g. COMMENT_NOT_FOUND.
func NotFound(table string) error {
	return fmt.Errorf("%s%s: %w", sqlerr.TablePrefix, table, pgx.ErrNoRows)
}
