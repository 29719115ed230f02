package service

import (
	"context"
	"testing"

	"rag-chat-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func registerTestUser(t *testing.T, svc IAuthService) *dto.AuthResponse {
	t.Helper()
	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Password: "hunter22",
	})
	assert.NoError(t, err)
	return res
}

func TestRegisterIssuesToken(t *testing.T) {
	svc := NewAuthService(newFakeRepositoryFactory(), testSecret)

	res := registerTestUser(t, svc)

	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, 0, res.User.ChatCount)
	assert.NotEmpty(t, res.Token)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.NotEmpty(t, claims["user_id"])
	assert.NotNil(t, claims["exp"])
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newFakeRepositoryFactory(), testSecret)
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Password: "different",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(newFakeRepositoryFactory(), testSecret)
	registerTestUser(t, svc)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "hunter22",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
	assert.NotEmpty(t, res.Token)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeRepositoryFactory(), testSecret)
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeRepositoryFactory(), testSecret)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := NewAuthService(factory, testSecret)
	registerTestUser(t, svc)

	user, err := factory.uow.userRepo.FindOne(context.Background())
	assert.NoError(t, err)

	profile, err := svc.Profile(context.Background(), user.Id)

	assert.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, 0, profile.ChatCount)
	assert.Equal(t, int64(0), profile.TotalTokens)
}
