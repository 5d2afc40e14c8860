package model

// User is a comment author. Exactly one user is the current user.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
