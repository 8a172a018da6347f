package entity

import "time"

// Likes are idempotent-once: the composite primary keys make a second like
// by the same user a storage conflict, not a second row.

type PostLike struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	PostID string `gorm:"primaryKey"`
	Post   Post   `gorm:"foreignKey:PostID"`

	CreatedAt time.Time
}

func (PostLike) TableName() string {
	return "post_likes"
}

type CommentLike struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	CommentID string  `gorm:"primaryKey"`
	Comment   Comment `gorm:"foreignKey:CommentID"`

	CreatedAt time.Time
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
