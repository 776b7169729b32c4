package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jwkang/minitweet/internal/api/middleware"
	"github.com/jwkang/minitweet/internal/domain"
	"github.com/jwkang/minitweet/internal/service"
	"github.com/sirupsen/logrus"
)

type TweetHandler struct {
	timelineService *service.TimelineService
	authService     *service.AuthService
	log             *logrus.Logger
}

func NewTweetHandler(timelineService *service.TimelineService, authService *service.AuthService, log *logrus.Logger) *TweetHandler {
	return &TweetHandler{
		timelineService: timelineService,
		authService:     authService,
		log:             log,
	}
}

type TweetRequest struct {
	Tweet string `json:"tweet"`
}

type FollowRequest struct {
	Follow int64 `json:"follow"`
}

type UnfollowRequest struct {
	Unfollow int64 `json:"unfollow"`
}

type TimelineResponse struct {
	UserID   int64                  `json:"user_id"`
	Timeline []domain.TimelineEntry `json:"timeline"`
}

func (h *TweetHandler) Tweet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req TweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.timelineService.PostTweet(r.Context(), userID, req.Tweet); err != nil {
		if errors.Is(err, service.ErrTweetTooLong) {
			http.Error(w, "Tweet exceeds 300 characters", http.StatusBadRequest)
			return
		}
		h.log.WithError(err).Error("tweet failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *TweetHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// every follow failure, duplicates included, surfaces as a store error
	// in this API
	if err := h.authService.Follow(r.Context(), userID, req.Follow); err != nil {
		h.log.WithError(err).Error("follow failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *TweetHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UnfollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.authService.Unfollow(r.Context(), userID, req.Unfollow); err != nil {
		if errors.Is(err, service.ErrNotFollowing) {
			http.Error(w, "No such user to unfollow", http.StatusBadRequest)
			return
		}
		h.log.WithError(err).Error("unfollow failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *TweetHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	timeline, err := h.timelineService.GetTimeline(r.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("timeline failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if timeline == nil {
		timeline = []domain.TimelineEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TimelineResponse{
		UserID:   userID,
		Timeline: timeline,
	})
}
