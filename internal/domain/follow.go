package domain

import "time"

// Follow is a directed edge: UserID's timeline includes FollowUserID's tweets.
// The (user_id, follow_user_id) pair is the primary key, so a duplicate follow
// fails at the constraint layer rather than silently succeeding twice.
type Follow struct {
	UserID       int64     `json:"userId" gorm:"primaryKey;autoIncrement:false"`
	FollowUserID int64     `json:"followUserId" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt    time.Time `json:"createdAt" gorm:"not null"`

	User       User `json:"-" gorm:"foreignKey:UserID"`
	FollowUser User `json:"-" gorm:"foreignKey:FollowUserID"`
}

func (Follow) TableName() string { return "users_follow_list" }
