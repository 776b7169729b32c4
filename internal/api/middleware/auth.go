package middleware

import (
	"context"
	"net/http"

	"github.com/jwkang/minitweet/internal/service"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Auth gates a route group on a valid access token. The client sends the raw
// token in the Authorization header, without a "Bearer " prefix.
func Auth(authService *service.AuthService, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := r.Header.Get("Authorization")
			if accessToken == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			userID, err := authService.ParseToken(accessToken)
			if err != nil {
				log.WithError(err).Debug("token validation failed")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
