package model

type Comment struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	Author    User   `json:"author"`
	Content   string `json:"content"`
	LikeCount int64  `json:"like_count"`
	CreatedAt string `json:"created_at"`
}

type CreateCommentRequest struct {
	PostID  string `json:"post_id"`
	Content string `json:"content"`
}

type CreateCommentResponse struct {
	Comment Comment `json:"comment"`
}

type GetCommentsRequest struct {
	PostID string `json:"post_id"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetCommentsResponse struct {
	Comments []Comment `json:"comments"`
}

type UpdateCommentRequest struct {
	CommentID string `json:"comment_id"`
	Content   string `json:"content"`
}

type UpdateCommentResponse struct {
	Comment Comment `json:"comment"`
}

type DeleteCommentRequest struct {
	CommentID string `json:"comment_id"`
}

type DeleteCommentResponse struct{}

type LikeCommentRequest struct {
	CommentID string `json:"comment_id"`
}

type LikeCommentResponse struct{}

type UnlikeCommentRequest struct {
	CommentID string `json:"comment_id"`
}

type UnlikeCommentResponse struct{}
