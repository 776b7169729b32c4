package domain

import "time"

type User struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	Email          string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"`
	Profile        string    `json:"profile" gorm:"size:2000;not null"`
	CreatedAt      time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// Credential is the projection returned by the login lookup.
// The service layer never loads the full user row to authenticate.
type Credential struct {
	UserID         int64
	HashedPassword string
}
