package model

// Post is a full post row.
type Post struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PostSummary is the list-view projection returned by GET /posts.
type PostSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PostRecord is a post with its comments as the store returns them:
// comments newest first, each with its raw like count.
type PostRecord struct {
	Title    string
	Body     string
	Comments []CommentRecord
}

// PostDetail is the response of GET /posts/:id.
type PostDetail struct {
	Title    string        `json:"title"`
	Body     string        `json:"body"`
	Comments []CommentView `json:"comments"`
}

// ListPostsPayload is the (empty) request of GET /posts.
type ListPostsPayload struct{}

func (p *ListPostsPayload) Validate() error {
	return nil
}

// GetPostPayload is the request of GET /posts/:id.
type GetPostPayload struct {
	ID string `param:"id" json:"-" validate:"required"`
}

func (p *GetPostPayload) Validate() error {
	return validate.Struct(p)
}
