package entity

import "time"

// Follow is an edge from the follower to the followed user. The pair is
// unique at the storage layer so concurrent duplicate follows cannot both
// succeed.
type Follow struct {
	FollowerID string `gorm:"primaryKey"`
	Follower   User   `gorm:"foreignKey:FollowerID"`

	FollowingID string `gorm:"primaryKey"`
	Following   User   `gorm:"foreignKey:FollowingID"`

	CreatedAt time.Time
}

func (Follow) TableName() string {
	return "follows"
}
