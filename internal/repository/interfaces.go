package repository

import (
	"context"

	"github.com/jwkang/minitweet/internal/domain"
)

type UserRepository interface {
	// Create inserts the user and returns the generated primary key.
	// Fails with ErrDuplicateKey when the email is already registered.
	Create(ctx context.Context, user *domain.User) (int64, error)
	// FindCredentialByEmail returns (nil, nil) when no user matches; absence
	// is a normal result the caller branches on, not an error.
	FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error)
	// CreateFollow fails with ErrDuplicateKey on a duplicate pair and
	// ErrForeignKey when either id does not reference an existing user.
	CreateFollow(ctx context.Context, userID, followUserID int64) error
	// DeleteFollow reports whether an edge existed to delete.
	DeleteFollow(ctx context.Context, userID, unfollowUserID int64) (bool, error)
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) error
	// GetTimeline returns the user's own tweets plus the tweets of everyone
	// they follow, in the store's natural row order.
	GetTimeline(ctx context.Context, userID int64) ([]domain.TimelineEntry, error)
}

type Repositories struct {
	User  UserRepository
	Tweet TweetRepository
}
