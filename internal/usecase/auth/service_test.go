package auth

import (
	"context"
	"testing"
	"time"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/domain/session"
	sessionMocks "logistics-backoffice/internal/domain/session/mocks"
	domainUser "logistics-backoffice/internal/domain/user"
	userMocks "logistics-backoffice/internal/domain/user/mocks"
	appErrors "logistics-backoffice/pkg/errors"
	"logistics-backoffice/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sessionConfig = config.SessionConfig{Secret: "test-secret", TTL: time.Hour}

func newService(t *testing.T) (*Service, *userMocks.MockRepository, *sessionMocks.MockStore) {
	ctrl := gomock.NewController(t)
	users := userMocks.NewMockRepository(ctrl)
	sessions := sessionMocks.NewMockStore(ctrl)
	return NewService(users, sessions, sessionConfig), users, sessions
}

func storedUser(t *testing.T) *domainUser.User {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	return &domainUser.User{ID: 3, Username: "petrov", PasswordHash: hash, Role: domainUser.RoleLogist}
}

func TestService_Login(t *testing.T) {
	svc, users, sessions := newService(t)

	users.EXPECT().GetByUsername(gomock.Any(), "petrov").Return(storedUser(t), nil)

	var saved *session.Session
	sessions.EXPECT().Save(gomock.Any(), gomock.Any(), time.Hour).DoAndReturn(
		func(_ context.Context, s *session.Session, _ time.Duration) error {
			saved = s
			return nil
		})

	resp, err := svc.Login(context.Background(), &LoginRequest{Username: "petrov", Password: "secret123"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(3), saved.UserID)
	assert.Equal(t, domainUser.RoleLogist, saved.Role)
	assert.Equal(t, "petrov", resp.User.Username)

	sid, err := utils.ParseSessionToken(resp.Token, sessionConfig.Secret)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, sid)
}

func TestService_Login_BadCredentials(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		svc, users, _ := newService(t)
		users.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, domainUser.ErrUserNotFound)

		_, err := svc.Login(context.Background(), &LoginRequest{Username: "nobody", Password: "x"})
		assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users, _ := newService(t)
		users.EXPECT().GetByUsername(gomock.Any(), "petrov").Return(storedUser(t), nil)

		_, err := svc.Login(context.Background(), &LoginRequest{Username: "petrov", Password: "wrong"})
		assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	})
}

func TestService_Authenticate(t *testing.T) {
	svc, _, sessions := newService(t)

	token, _, err := utils.GenerateSessionToken("sid-1", sessionConfig.Secret, time.Hour)
	require.NoError(t, err)

	sessions.EXPECT().Get(gomock.Any(), "sid-1").Return(&session.Session{ID: "sid-1", UserID: 3}, nil)

	sess, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), sess.UserID)

	_, err = svc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestService_Logout(t *testing.T) {
	svc, _, sessions := newService(t)

	sessions.EXPECT().Delete(gomock.Any(), "sid-1").Return(nil)

	require.NoError(t, svc.Logout(context.Background(), &session.Session{ID: "sid-1", UserID: 3}))
}
