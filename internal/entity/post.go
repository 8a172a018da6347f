package entity

type Post struct {
	Base

	AuthorID string `gorm:"not null;index"`
	Author   User   `gorm:"foreignKey:AuthorID"`

	// At least one of Content and CodeSnippet is non-empty. This is
	// enforced at validation time, not by the storage layer.
	Content     string `gorm:"type:text"`
	CodeSnippet string `gorm:"type:text"`
	Language    string
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	Base

	AuthorID string `gorm:"not null;index"`
	Author   User   `gorm:"foreignKey:AuthorID"`

	PostID string `gorm:"not null;index"`
	Post   Post   `gorm:"foreignKey:PostID"`

	Content string `gorm:"type:text;not null"`
}

func (Comment) TableName() string {
	return "comments"
}
