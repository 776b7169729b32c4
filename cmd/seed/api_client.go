package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type LoginResponse struct {
	UserID      int64  `json:"user_id"`
	AccessToken string `json:"access_token"`
}

type TimelineEntry struct {
	UserID int64  `json:"user_id"`
	Tweet  string `json:"tweet"`
}

type TimelineResponse struct {
	UserID   int64           `json:"user_id"`
	Timeline []TimelineEntry `json:"timeline"`
}

func (c *APIClient) SignUp(name, email, password, profile string) (int64, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"profile":  profile,
	}

	var newID int64
	if err := c.post("/sign-up", "", body, &newID); err != nil {
		return 0, err
	}
	return newID, nil
}

func (c *APIClient) Login(email, password string) (*LoginResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp LoginResponse
	if err := c.post("/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) Tweet(token, tweet string) error {
	return c.post("/tweet", token, map[string]string{"tweet": tweet}, nil)
}

func (c *APIClient) Follow(token string, targetID int64) error {
	return c.post("/follow", token, map[string]int64{"follow": targetID}, nil)
}

func (c *APIClient) Unfollow(token string, targetID int64) error {
	return c.post("/unfollow", token, map[string]int64{"unfollow": targetID}, nil)
}

func (c *APIClient) Timeline(token string) (*TimelineResponse, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/timeline", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GET /timeline: status %d: %s", resp.StatusCode, raw)
	}

	var timeline TimelineResponse
	if err := json.NewDecoder(resp.Body).Decode(&timeline); err != nil {
		return nil, err
	}
	return &timeline, nil
}

func (c *APIClient) post(path, token string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("POST %s: status %d: %s", path, resp.StatusCode, raw)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
