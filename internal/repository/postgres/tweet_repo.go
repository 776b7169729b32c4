package postgres

import (
	"context"

	"github.com/jwkang/minitweet/internal/domain"
	"gorm.io/gorm"
)

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *tweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(tweet).Error
	})
	return translateError(err)
}

// GetTimeline composes the timeline in a single query: the full tweet
// relation is left-joined against the caller's follow edges and filtered to
// tweets authored by the caller or by anyone they follow. The outer join is
// load-bearing: with zero follow edges an inner join would return no rows at
// all and drop the caller's own tweets. No ORDER BY is applied; rows come
// back in insertion order.
func (r *tweetRepository) GetTimeline(ctx context.Context, userID int64) ([]domain.TimelineEntry, error) {
	var timeline []domain.TimelineEntry
	err := r.db.WithContext(ctx).
		Table("tweets").
		Select("tweets.user_id AS user_id, tweets.tweet AS tweet").
		Joins("LEFT JOIN users_follow_list ON users_follow_list.user_id = ?", userID).
		Where("tweets.user_id = ? OR tweets.user_id = users_follow_list.follow_user_id", userID).
		Scan(&timeline).Error
	if err != nil {
		return nil, err
	}
	return timeline, nil
}
