package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jwkang/minitweet/internal/api/handlers"
	"github.com/jwkang/minitweet/internal/api/middleware"
	"github.com/jwkang/minitweet/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func NewRouter(services *service.Services, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, log)
	tweetHandler := handlers.NewTweetHandler(services.Timeline, services.Auth, log)

	// Public routes
	r.Post("/sign-up", authHandler.SignUp)
	r.Post("/login", authHandler.Login)

	// Token-gated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth, log))
		r.Post("/tweet", tweetHandler.Tweet)
		r.Post("/follow", tweetHandler.Follow)
		r.Post("/unfollow", tweetHandler.Unfollow)
		r.Get("/timeline", tweetHandler.Timeline)
	})

	return r
}
