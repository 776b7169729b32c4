package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/jwkang/minitweet/internal/domain"
	"github.com/jwkang/minitweet/internal/repository"
	"github.com/sirupsen/logrus"
)

var ErrTweetTooLong = errors.New("tweet exceeds 300 characters")

type TimelineService struct {
	tweetRepo repository.TweetRepository
	log       *logrus.Logger
}

func NewTimelineService(tweetRepo repository.TweetRepository, log *logrus.Logger) *TimelineService {
	return &TimelineService{
		tweetRepo: tweetRepo,
		log:       log,
	}
}

// PostTweet rejects over-long bodies before any store interaction. Length is
// counted in characters, so a 300-rune multibyte tweet is accepted.
func (s *TimelineService) PostTweet(ctx context.Context, userID int64, body string) error {
	if utf8.RuneCountInString(body) > domain.MaxTweetLength {
		return ErrTweetTooLong
	}

	return s.tweetRepo.Create(ctx, &domain.Tweet{
		UserID: userID,
		Tweet:  body,
	})
}

func (s *TimelineService) GetTimeline(ctx context.Context, userID int64) ([]domain.TimelineEntry, error) {
	return s.tweetRepo.GetTimeline(ctx, userID)
}
