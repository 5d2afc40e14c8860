package model

// Like marks that UserID liked CommentID. The pair is the identity.
type Like struct {
	UserID    string
	CommentID string
}

// LikeToggle is the response of POST .../toggleLike: AddLike is true when
// the like was created and false when it was removed.
type LikeToggle struct {
	AddLike bool `json:"addLike"`
}
