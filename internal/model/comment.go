package model

import "time"

// Comment is a full comment row.
type Comment struct {
	ID        string
	Message   string
	UserID    string
	PostID    string
	ParentID  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentAuthor is the user projection embedded in comment responses.
type CommentAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommentRecord is a comment as selected by the store, with the derived
// number of likes.
type CommentRecord struct {
	ID        string
	Message   string
	ParentID  *string
	CreatedAt time.Time
	User      CommentAuthor
	LikeCount int
}

// NewComment is the data needed to insert a comment.
type NewComment struct {
	Message  string
	UserID   string
	PostID   string
	ParentID *string
}

// CommentView is the comment shape every comment response uses.
// ParentID is null for root comments.
type CommentView struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	ParentID  *string       `json:"parentId"`
	CreatedAt time.Time     `json:"createdAt"`
	User      CommentAuthor `json:"user"`
	LikeCount int           `json:"likeCount"`
	LikedByMe bool          `json:"likedByMe"`
}

// UpdatedComment is the response of PUT /posts/:postId/comments/:commentId.
//
// LikeCount and LikedByMe are always 0/false; the edit does not re-read
// the like rows.
type UpdatedComment struct {
	Message   string `json:"message"`
	LikeCount int    `json:"likeCount"`
	LikedByMe bool   `json:"likedByMe"`
}

// DeletedComment is the response of DELETE /posts/:postId/comments/:commentId.
type DeletedComment struct {
	ID string `json:"id"`
}

// CreateCommentPayload is the request of POST /posts/:id/comments.
type CreateCommentPayload struct {
	PostID   string  `param:"id" json:"-" validate:"required"`
	Message  string  `json:"message" validate:"required"`
	ParentID *string `json:"parentId"`
}

func (p *CreateCommentPayload) Validate() error {
	return validate.Struct(p)
}

// UpdateCommentPayload is the request of PUT /posts/:postId/comments/:commentId.
type UpdateCommentPayload struct {
	PostID    string `param:"postId" json:"-"`
	CommentID string `param:"commentId" json:"-" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

func (p *UpdateCommentPayload) Validate() error {
	return validate.Struct(p)
}

// CommentPathPayload addresses a single comment by path parameters. Used
// by DELETE and toggleLike.
type CommentPathPayload struct {
	PostID    string `param:"postId" json:"-"`
	CommentID string `param:"commentId" json:"-" validate:"required"`
}

func (p *CommentPathPayload) Validate() error {
	return validate.Struct(p)
}
