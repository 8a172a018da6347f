package model

type Post struct {
	ID           string `json:"id"`
	Author       User   `json:"author"`
	Content      string `json:"content"`
	CodeSnippet  string `json:"code_snippet"`
	Language     string `json:"language"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
	IsLiked      bool   `json:"is_liked"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type CreatePostRequest struct {
	Content     string `json:"content"`
	CodeSnippet string `json:"code_snippet"`
	Language    string `json:"language"`
}

type CreatePostResponse struct {
	Post Post `json:"post"`
}

type GetPostRequest struct {
	PostID string `json:"post_id"`
}

type GetPostResponse Post

type GetPostsRequest struct {
	AuthorID string `json:"author_id"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type GetPostsResponse struct {
	Posts []Post `json:"posts"`
}

type GetFeedRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetFeedResponse struct {
	Posts []Post `json:"posts"`
}

type UpdatePostRequest struct {
	PostID      string `json:"post_id"`
	Content     string `json:"content"`
	CodeSnippet string `json:"code_snippet"`
	Language    string `json:"language"`
}

type UpdatePostResponse struct {
	Post Post `json:"post"`
}

type DeletePostRequest struct {
	PostID string `json:"post_id"`
}

type DeletePostResponse struct{}

type LikePostRequest struct {
	PostID string `json:"post_id"`
}

type LikePostResponse struct{}

type UnlikePostRequest struct {
	PostID string `json:"post_id"`
}

type UnlikePostResponse struct{}
