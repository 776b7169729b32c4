package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jwkang/minitweet/internal/config"
	"github.com/jwkang/minitweet/internal/domain"
	"github.com/jwkang/minitweet/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyFollowing   = errors.New("already following")
	ErrUnknownUser        = errors.New("unknown user")
	ErrNotFollowing       = errors.New("not following")
)

type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	log      *logrus.Logger
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, log *logrus.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
		log:      log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Profile  string
}

type LoginResult struct {
	UserID      int64
	AccessToken string
}

// Register hashes the plaintext password before anything touches the store.
// The plaintext is never persisted or logged.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (int64, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	newID, err := s.userRepo.Create(ctx, &domain.User{
		Name:           input.Name,
		Email:          input.Email,
		HashedPassword: string(hashed),
		Profile:        input.Profile,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}

	s.log.WithField("user_id", newID).Info("user registered")
	return newID, nil
}

// Authenticate returns a uniform boolean for unknown email and wrong password
// alike; only store failures surface as errors.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (bool, error) {
	cred, err := s.userRepo.FindCredentialByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if cred == nil {
		return false, nil
	}
	match := bcrypt.CompareHashAndPassword([]byte(cred.HashedPassword), []byte(password)) == nil
	return match, nil
}

// Login verifies the credential and issues an access token in one round-trip.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	cred, err := s.userRepo.FindCredentialByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.HashedPassword), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(cred.UserID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:      cred.UserID,
		AccessToken: token,
	}, nil
}

func (s *AuthService) IssueToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ParseToken verifies the signature and expiry and recovers the user id.
func (s *AuthService) ParseToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("missing user_id claim")
	}
	return int64(rawID), nil
}

func (s *AuthService) Follow(ctx context.Context, userID, targetID int64) error {
	err := s.userRepo.CreateFollow(ctx, userID, targetID)
	if errors.Is(err, repository.ErrDuplicateKey) {
		return ErrAlreadyFollowing
	}
	if errors.Is(err, repository.ErrForeignKey) {
		return ErrUnknownUser
	}
	return err
}

func (s *AuthService) Unfollow(ctx context.Context, userID, targetID int64) error {
	found, err := s.userRepo.DeleteFollow(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFollowing
	}
	return nil
}
