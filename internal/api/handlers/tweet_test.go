package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/jwkang/minitweet/internal/domain"
	"github.com/jwkang/minitweet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthGate(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "tweet", method: http.MethodPost, path: "/tweet"},
		{name: "follow", method: http.MethodPost, path: "/follow"},
		{name: "unfollow", method: http.MethodPost, path: "/unfollow"},
		{name: "timeline", method: http.MethodGet, path: "/timeline"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" without token", func(t *testing.T) {
			resp := testutil.DoJSON(t, ts, tt.method, tt.path, "", nil)
			defer resp.Body.Close()
			testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
		})

		t.Run(tt.name+" with garbage token", func(t *testing.T) {
			resp := testutil.DoJSON(t, ts, tt.method, tt.path, "not-a-token", nil)
			defer resp.Body.Close()
			testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
		})
	}
}

func TestTweet(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("successful tweet", func(t *testing.T) {
		resp := testutil.DoJSON(t, ts, http.MethodPost, "/tweet", token, map[string]string{
			"tweet": "hello world",
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	t.Run("over 300 characters", func(t *testing.T) {
		resp := testutil.DoJSON(t, ts, http.MethodPost, "/tweet", token, map[string]string{
			"tweet": strings.Repeat("a", 301),
		})
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "300 characters")
	})
}

func TestFollowUnfollow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, tokenA := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	userB, _ := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("follow succeeds", func(t *testing.T) {
		resp := testutil.DoJSON(t, ts, http.MethodPost, "/follow", tokenA, map[string]int64{
			"follow": userB,
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	t.Run("unfollow succeeds", func(t *testing.T) {
		resp := testutil.DoJSON(t, ts, http.MethodPost, "/unfollow", tokenA, map[string]int64{
			"unfollow": userB,
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	t.Run("unfollow of absent edge", func(t *testing.T) {
		resp := testutil.DoJSON(t, ts, http.MethodPost, "/unfollow", tokenA, map[string]int64{
			"unfollow": userB,
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})

	t.Run("follow of unknown user reports a store error", func(t *testing.T) {
		resp := testutil.DoJSON(t, ts, http.MethodPost, "/follow", tokenA, map[string]int64{
			"follow": 999999,
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusInternalServerError)
	})
}

// TestTimelineScenario walks the full flow: two users, a pre-existing tweet,
// a follow, and two more tweets. The timeline must come back in creation
// order, older tweets of the followed user included.
func TestTimelineScenario(t *testing.T) {
	ts := testutil.NewTestServer(t)

	userA, tokenA := testutil.NewUserBuilder().WithName("A").BuildAndAuthenticate(t, ts)
	userB, tokenB := testutil.NewUserBuilder().WithName("B").BuildAndAuthenticate(t, ts)

	// B tweets before A follows them
	resp := testutil.DoJSON(t, ts, http.MethodPost, "/tweet", tokenB, map[string]string{
		"tweet": "Hello World!",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutil.DoJSON(t, ts, http.MethodPost, "/follow", tokenA, map[string]int64{
		"follow": userB,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutil.DoJSON(t, ts, http.MethodPost, "/tweet", tokenA, map[string]string{
		"tweet": "tweet test",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutil.DoJSON(t, ts, http.MethodPost, "/tweet", tokenB, map[string]string{
		"tweet": "tweet test 2",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutil.DoJSON(t, ts, http.MethodGet, "/timeline", tokenA, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var timeline struct {
		UserID   int64                  `json:"user_id"`
		Timeline []domain.TimelineEntry `json:"timeline"`
	}
	testutil.AssertJSONResponse(t, resp, &timeline)

	assert.Equal(t, userA, timeline.UserID)
	assert.Equal(t, []domain.TimelineEntry{
		{UserID: userB, Tweet: "Hello World!"},
		{UserID: userA, Tweet: "tweet test"},
		{UserID: userB, Tweet: "tweet test 2"},
	}, timeline.Timeline)
}

func TestTimelineEmpty(t *testing.T) {
	ts := testutil.NewTestServer(t)

	userID, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := testutil.DoJSON(t, ts, http.MethodGet, "/timeline", token, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var timeline struct {
		UserID   int64                  `json:"user_id"`
		Timeline []domain.TimelineEntry `json:"timeline"`
	}
	testutil.AssertJSONResponse(t, resp, &timeline)

	assert.Equal(t, userID, timeline.UserID)
	assert.Empty(t, timeline.Timeline)
}
