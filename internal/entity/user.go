package entity

type User struct {
	Base

	Email        string `gorm:"unique;not null"`
	Username     string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`

	FullName             string
	Bio                  string
	GithubProfile        string
	StackoverflowProfile string
}

func (User) TableName() string {
	return "users"
}
