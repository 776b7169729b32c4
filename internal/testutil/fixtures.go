package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jwkang/minitweet/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
	profile  string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
		profile:  "test profile",
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Name:           b.name,
		Email:          b.email,
		HashedPassword: string(hashedPassword),
		Profile:        b.profile,
		CreatedAt:      time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// LoginResponse matches the API login response
type LoginResponse struct {
	UserID      int64  `json:"user_id"`
	AccessToken string `json:"access_token"`
}

// BuildAndAuthenticate creates a user via the API and returns the user id and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (int64, string) {
	t.Helper()

	reqBody := map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
		"profile":  b.profile,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.BaseURL()+"/sign-up", "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected sign-up status code: %d", resp.StatusCode)
	}

	loginBody, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": b.password,
	})

	loginResp, err := http.Post(ts.BaseURL()+"/login", "application/json", bytes.NewBuffer(loginBody))
	if err != nil {
		t.Fatalf("failed to log in user: %v", err)
	}
	defer loginResp.Body.Close()

	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", loginResp.StatusCode)
	}

	var login LoginResponse
	if err := json.NewDecoder(loginResp.Body).Decode(&login); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return login.UserID, login.AccessToken
}

// CreateTweet inserts a tweet row directly, bypassing the service layer
func CreateTweet(t *testing.T, db *gorm.DB, userID int64, body string) *domain.Tweet {
	t.Helper()

	tweet := &domain.Tweet{
		UserID:    userID,
		Tweet:     body,
		CreatedAt: time.Now(),
	}
	if err := db.Create(tweet).Error; err != nil {
		t.Fatalf("failed to create tweet: %v", err)
	}
	return tweet
}

// CreateFollow inserts a follow edge directly, bypassing the service layer
func CreateFollow(t *testing.T, db *gorm.DB, userID, followUserID int64) {
	t.Helper()

	edge := &domain.Follow{
		UserID:       userID,
		FollowUserID: followUserID,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(edge).Error; err != nil {
		t.Fatalf("failed to create follow edge: %v", err)
	}
}

// DoJSON performs an authenticated JSON request against the test server
func DoJSON(t *testing.T, ts *TestServer, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, ts.BaseURL()+path, payload)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
