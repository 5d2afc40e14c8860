// Package memory is an in-process implementation of the repository stores.
//
// It backs storage.driver=memory and the end-to-end router tests. Failures
// are reported as the same *pgconn.PgError values Postgres would return, so
// sqlerr.HandleError treats both stores alike.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/deppfellow/nested-comments/internal/model"
	"github.com/deppfellow/nested-comments/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	_ repository.UserStore    = userStore{}
	_ repository.PostStore    = postStore{}
	_ repository.CommentStore = commentStore{}
	_ repository.LikeStore    = likeStore{}
)

// Store holds users, posts, comments and likes behind one RWMutex. The
// store interfaces are served by thin views returned from Repositories.
type Store struct {
	mu       sync.RWMutex
	users    []model.User
	posts    []model.Post
	comments map[string]*model.Comment
	likes    map[model.Like]struct{}
	now      func() time.Time
}

func New() *Store {
	return &Store{
		comments: make(map[string]*model.Comment),
		likes:    make(map[model.Like]struct{}),
		now:      time.Now,
	}
}

// Repositories exposes s through every store interface.
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Users:    userStore{s},
		Posts:    postStore{s},
		Comments: commentStore{s},
		Likes:    likeStore{s},
	}
}

type (
	userStore    struct{ s *Store }
	postStore    struct{ s *Store }
	commentStore struct{ s *Store }
	likeStore    struct{ s *Store }
)

func (s *Store) AddUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

func (s *Store) AddPost(post model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, post)
}

// AddComment stores comment as is; CreatedAt and UpdatedAt are not filled in.
func (s *Store) AddComment(comment model.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[comment.ID] = &comment
}

func (s *Store) AddLike(like model.Like) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes[like] = struct{}{}
}

func (r userStore) FindFirstByName(ctx context.Context, name string) (*model.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Name == name {
			user := u
			return &user, nil
		}
	}
	return nil, repository.NotFound("users")
}

func (r postStore) List(ctx context.Context) ([]model.PostSummary, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]model.PostSummary, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, model.PostSummary{ID: p.ID, Title: p.Title})
	}
	return posts, nil
}

func (r postStore) GetWithComments(ctx context.Context, postID string) (*model.PostRecord, error) {
	s := r.s
	if err := checkUUID(postID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.findPost(postID)
	if !ok {
		return nil, repository.NotFound("posts")
	}

	record := &model.PostRecord{
		Title:    post.Title,
		Body:     post.Body,
		Comments: []model.CommentRecord{},
	}
	for _, c := range s.comments {
		if c.PostID != postID {
			continue
		}
		record.Comments = append(record.Comments, s.toRecord(c))
	}
	sort.SliceStable(record.Comments, func(i, j int) bool {
		return record.Comments[i].CreatedAt.After(record.Comments[j].CreatedAt)
	})

	return record, nil
}

func (r commentStore) Create(ctx context.Context, comment model.NewComment) (*model.CommentRecord, error) {
	s := r.s
	for _, id := range []string{comment.UserID, comment.PostID} {
		if err := checkUUID(id); err != nil {
			return nil, err
		}
	}
	if comment.ParentID != nil {
		if err := checkUUID(*comment.ParentID); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findUser(comment.UserID); !ok {
		return nil, foreignKeyViolation("comments", "user_id")
	}
	if _, ok := s.findPost(comment.PostID); !ok {
		return nil, foreignKeyViolation("comments", "post_id")
	}
	if comment.ParentID != nil {
		if _, ok := s.comments[*comment.ParentID]; !ok {
			return nil, foreignKeyViolation("comments", "parent_id")
		}
	}

	now := s.now()
	c := &model.Comment{
		ID:        uuid.NewString(),
		Message:   comment.Message,
		UserID:    comment.UserID,
		PostID:    comment.PostID,
		ParentID:  comment.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.comments[c.ID] = c

	record := s.toRecord(c)
	return &record, nil
}

func (r commentStore) OwnerID(ctx context.Context, commentID string) (string, error) {
	s := r.s
	if err := checkUUID(commentID); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[commentID]
	if !ok {
		return "", repository.NotFound("comments")
	}
	return c.UserID, nil
}

func (r commentStore) UpdateMessage(ctx context.Context, commentID, message string) (string, error) {
	s := r.s
	if err := checkUUID(commentID); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return "", repository.NotFound("comments")
	}
	c.Message = message
	c.UpdatedAt = s.now()
	return c.Message, nil
}

// Delete removes the comment together with its replies and every like on
// any of them.
func (r commentStore) Delete(ctx context.Context, commentID string) (string, error) {
	s := r.s
	if err := checkUUID(commentID); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[commentID]; !ok {
		return "", repository.NotFound("comments")
	}

	removed := map[string]bool{commentID: true}
	for changed := true; changed; {
		changed = false
		for id, c := range s.comments {
			if !removed[id] && c.ParentID != nil && removed[*c.ParentID] {
				removed[id] = true
				changed = true
			}
		}
	}

	for id := range removed {
		delete(s.comments, id)
	}
	for like := range s.likes {
		if removed[like.CommentID] {
			delete(s.likes, like)
		}
	}

	return commentID, nil
}

func (r likeStore) LikedCommentIDs(ctx context.Context, userID string, commentIDs []string) ([]string, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	liked := []string{}
	for _, id := range commentIDs {
		if _, ok := s.likes[model.Like{UserID: userID, CommentID: id}]; ok {
			liked = append(liked, id)
		}
	}
	return liked, nil
}

func (r likeStore) Exists(ctx context.Context, like model.Like) (bool, error) {
	s := r.s
	if err := checkUUID(like.CommentID); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.likes[like]
	return ok, nil
}

func (r likeStore) Create(ctx context.Context, like model.Like) error {
	for _, id := range []string{like.UserID, like.CommentID} {
		if err := checkUUID(id); err != nil {
			return err
		}
	}

	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findUser(like.UserID); !ok {
		return foreignKeyViolation("likes", "user_id")
	}
	if _, ok := s.comments[like.CommentID]; !ok {
		return foreignKeyViolation("likes", "comment_id")
	}
	if _, ok := s.likes[like]; ok {
		return &pgconn.PgError{
			Severity:       "ERROR",
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "likes_pkey"`,
			TableName:      "likes",
			ConstraintName: "likes_pkey",
		}
	}
	s.likes[like] = struct{}{}
	return nil
}

func (r likeStore) Delete(ctx context.Context, like model.Like) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.likes, like)
	return nil
}

func (s *Store) findUser(id string) (model.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (s *Store) findPost(id string) (model.Post, bool) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

// toRecord must be called with s.mu held.
func (s *Store) toRecord(c *model.Comment) model.CommentRecord {
	author, _ := s.findUser(c.UserID)

	likes := 0
	for like := range s.likes {
		if like.CommentID == c.ID {
			likes++
		}
	}

	return model.CommentRecord{
		ID:        c.ID,
		Message:   c.Message,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		User:      model.CommentAuthor{ID: author.ID, Name: author.Name},
		LikeCount: likes,
	}
}

func checkUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &pgconn.PgError{
			Severity: "ERROR",
			Code:     "22P02",
			Message:  fmt.Sprintf("invalid input syntax for type uuid: %q", id),
		}
	}
	return nil
}

func foreignKeyViolation(table, column string) error {
	constraint := fmt.Sprintf("%s_%s_fkey", table, column)
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        fmt.Sprintf("insert or update on table %q violates foreign key constraint %q", table, constraint),
		TableName:      table,
		ConstraintName: constraint,
	}
}
