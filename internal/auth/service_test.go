package auth

import (
	"context"
	"testing"
	"time"

	"cinegold/internal/shared/config"
	"cinegold/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*users.User
	byID    map[string]*users.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*users.User),
		byID:    make(map[string]*users.User),
	}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *users.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Demo User",
		Email:    "demo@cinegold.local",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "demo@cinegold.local", resp.User.Email)

	login, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "demo@cinegold.local",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "A",
		Email:    "dup@cinegold.local",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &RegisterRequest{
		Name:     "B",
		Email:    "dup@cinegold.local",
		Password: "different",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Demo",
		Email:    "wp@cinegold.local",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "wp@cinegold.local",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Demo",
		Email:    "vt@cinegold.local",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "vt@cinegold.local", claims.Email)
	assert.Equal(t, "access", claims.Type)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Demo",
		Email:    "rt@cinegold.local",
		Password: "secret123",
	})
	require.NoError(t, err)

	pair, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// An access token is not accepted for refresh.
	_, err = svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.Error(t, err)
}
