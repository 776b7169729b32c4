package service

import (
	"github.com/jwkang/minitweet/internal/config"
	"github.com/jwkang/minitweet/internal/repository"
	"github.com/sirupsen/logrus"
)

type Services struct {
	Auth     *AuthService
	Timeline *TimelineService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log *logrus.Logger) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, cfg, log),
		Timeline: NewTimelineService(repos.Tweet, log),
	}
}
