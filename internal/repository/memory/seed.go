package memory

import (
	"time"

	"github.com/deppfellow/nested-comments/internal/model"
)

// Sample data ids, shared with database/seeds/seed.sql.
const (
	JohnID  = "6f1c1a9e-3b0e-4d5c-9a53-0d1f2f7f0a01"
	SallyID = "6f1c1a9e-3b0e-4d5c-9a53-0d1f2f7f0a02"

	FirstPostID  = "9b2d7c44-5e1f-4a8b-8c3d-1e2f3a4b5c01"
	SecondPostID = "9b2d7c44-5e1f-4a8b-8c3d-1e2f3a4b5c02"

	RootCommentID       = "c3a1e5f0-7d2b-4c6e-9f80-2a3b4c5d6e01"
	ReplyCommentID      = "c3a1e5f0-7d2b-4c6e-9f80-2a3b4c5d6e02"
	SecondRootCommentID = "c3a1e5f0-7d2b-4c6e-9f80-2a3b4c5d6e03"
)

// NewSeeded returns a Store holding the same sample data as the seed command.
func NewSeeded() *Store {
	s := New()
	now := s.now()

	s.AddUser(model.User{ID: JohnID, Name: "John"})
	s.AddUser(model.User{ID: SallyID, Name: "Sally"})

	s.AddPost(model.Post{
		ID:    FirstPostID,
		Title: "Post 1",
		Body:  "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed commodo nisi nec sem pulvinar, eget tincidunt leo egestas.",
	})
	s.AddPost(model.Post{
		ID:    SecondPostID,
		Title: "Post 2",
		Body:  "Curabitur ultricies nibh vitae mi feugiat, sit amet tempus purus porta. Praesent at lectus vel ipsum cursus faucibus.",
	})

	seedComment := func(id, message, userID string, parentID *string, age time.Duration) {
		s.AddComment(model.Comment{
			ID:        id,
			Message:   message,
			UserID:    userID,
			PostID:    FirstPostID,
			ParentID:  parentID,
			CreatedAt: now.Add(-age),
			UpdatedAt: now.Add(-age),
		})
	}
	root := RootCommentID
	seedComment(RootCommentID, "I am a root comment", JohnID, nil, 2*time.Hour)
	seedComment(ReplyCommentID, "I am a nested comment", SallyID, &root, time.Hour)
	seedComment(SecondRootCommentID, "I am another root comment", SallyID, nil, 30*time.Minute)

	s.AddLike(model.Like{UserID: SallyID, CommentID: RootCommentID})

	return s
}
