package domain

import "time"

// MaxTweetLength is measured in characters, not bytes.
const MaxTweetLength = 300

type Tweet struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userId" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Tweet     string    `json:"tweet" gorm:"size:300;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
}

func (Tweet) TableName() string { return "tweets" }

// TimelineEntry is one row of a user's timeline: who said what.
type TimelineEntry struct {
	UserID int64  `json:"user_id"`
	Tweet  string `json:"tweet"`
}
