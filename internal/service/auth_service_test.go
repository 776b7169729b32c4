package service_test

import (
	"context"
	"testing"

	"github.com/jwkang/minitweet/internal/repository/postgres"
	"github.com/jwkang/minitweet/internal/service"
	"github.com/jwkang/minitweet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg, testutil.TestLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Name:     "newuser",
				Email:    "newuser@example.com",
				Password: "password123",
				Profile:  "hello there",
			},
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Name:     "someone else",
				Email:    "existing@example.com",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean up between tests
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			newID, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Greater(t, newID, int64(0))

			// Only the hash is persisted, never the plaintext
			cred, err := repos.User.FindCredentialByEmail(ctx, tt.input.Email)
			require.NoError(t, err)
			require.NotNil(t, cred)
			assert.NotEqual(t, tt.input.Password, cred.HashedPassword)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.HashedPassword), []byte(tt.input.Password)))
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg, testutil.TestLogger())
	ctx := context.Background()

	testutil.NewUserBuilder().
		WithEmail("auth@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{
			name:     "correct password",
			email:    "auth@example.com",
			password: "correctpassword",
			want:     true,
		},
		{
			name:     "wrong password",
			email:    "auth@example.com",
			password: "wrongpassword",
			want:     false,
		},
		{
			name:     "unknown email",
			email:    "unknown@example.com",
			password: "anything",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := authService.Authenticate(ctx, tt.email, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg, testutil.TestLogger())
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		Build(t, testDB.DB)

	t.Run("successful login", func(t *testing.T) {
		result, err := authService.Login(ctx, "login@example.com", rawPassword)
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.UserID)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authService.Login(ctx, "login@example.com", "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authService.Login(ctx, "ghost@example.com", "anything")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(nil, cfg, testutil.TestLogger())

	token, err := authService.IssueToken(42)
	require.NoError(t, err)

	userID, err := authService.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAuthService_ExpiredTokenRejected(t *testing.T) {
	expiredCfg := testutil.TestConfig()
	expiredCfg.JWTExpirationHours = -1 // already past expiry at issuance

	issuer := service.NewAuthService(nil, expiredCfg, testutil.TestLogger())
	token, err := issuer.IssueToken(42)
	require.NoError(t, err)

	verifier := service.NewAuthService(nil, testutil.TestConfig(), testutil.TestLogger())
	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestAuthService_FollowUnfollow(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg, testutil.TestLogger())
	ctx := context.Background()

	follower, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	followee, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("follow succeeds", func(t *testing.T) {
		require.NoError(t, authService.Follow(ctx, follower.ID, followee.ID))
	})

	t.Run("duplicate follow", func(t *testing.T) {
		err := authService.Follow(ctx, follower.ID, followee.ID)
		assert.ErrorIs(t, err, service.ErrAlreadyFollowing)
	})

	t.Run("follow of unknown user", func(t *testing.T) {
		err := authService.Follow(ctx, follower.ID, 999999)
		assert.ErrorIs(t, err, service.ErrUnknownUser)
	})

	t.Run("unfollow succeeds", func(t *testing.T) {
		require.NoError(t, authService.Unfollow(ctx, follower.ID, followee.ID))
	})

	t.Run("unfollow of absent edge", func(t *testing.T) {
		err := authService.Unfollow(ctx, follower.ID, followee.ID)
		assert.ErrorIs(t, err, service.ErrNotFollowing)
	})
}
