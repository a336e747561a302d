package model

// Post struct defines how a stored post must be
type Post struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserId  string `json:"userId"`
}

// CreatePostBody defines the body when creating a new post
type CreatePostBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserId  string `json:"userId"`
}
