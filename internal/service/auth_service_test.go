package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/haarala/answerhub/internal/security"
	"github.com/haarala/answerhub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testUserPassword = "testpassword"

type MockAuthUserReader struct {
	mock.Mock
}

func (m *MockAuthUserReader) ReadUserByUsername(
	ctx context.Context,
	username string,
) (*store.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) CreateSession(
	ctx context.Context,
	session *store.UserSession,
) (*store.UserSession, error) {
	args := m.Called(ctx, session)
	if fn, ok := args.Get(0).(func(context.Context, *store.UserSession) (*store.UserSession, error)); ok {
		return fn(ctx, session)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.UserSession), args.Error(1)
}

func (m *MockSessionStore) ReadSessionByToken(
	ctx context.Context,
	token string,
) (*store.SessionWithUser, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SessionWithUser), args.Error(1)
}

func (m *MockSessionStore) UpdateSessionLogout(
	ctx context.Context,
	sessionID int64,
	logoutAt time.Time,
) error {
	args := m.Called(ctx, sessionID, logoutAt)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteSessionsExpiredBefore(
	ctx context.Context,
	cutoff time.Time,
) error {
	args := m.Called(ctx, cutoff)
	return args.Error(0)
}

func newTestUser(userID int64, username string, role store.Role) *store.User {
	salt, _ := security.GenerateSalt()
	return &store.User{
		UserID:       userID,
		UUID:         "uuid-" + username,
		Username:     username,
		Email:        username + "@example.com",
		Role:         role,
		Salt:         salt,
		PasswordHash: security.HashPassword(testUserPassword, salt),
	}
}

func TestAuthService_SignIn(t *testing.T) {
	t.Run("success - session is created with an expiry", func(t *testing.T) {
		// arrange
		expectedUser := newTestUser(1, "signinuser", store.RoleUser)
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockUserReader.On("ReadUserByUsername", context.Background(), expectedUser.Username).
			Return(expectedUser, nil)
		mockSessionStore.On(
			"CreateSession",
			context.Background(),
			mock.AnythingOfType("*store.UserSession"),
		).Return(
			func(ctx context.Context, s *store.UserSession) (*store.UserSession, error) {
				s.SessionID = 1
				return s, nil
			},
		)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		su, err := s.SignIn(context.Background(), expectedUser.Username, testUserPassword)

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, su)
		assert.NotEmpty(t, su.Session.Token)
		assert.Equal(t, expectedUser.UserID, su.Session.UserID)
		assert.Equal(t, expectedUser.UUID, su.User.UUID)
		assert.WithinDuration(
			t, time.Now().UTC().Add(8*time.Hour), su.Session.ExpiresAt, time.Minute,
		)
	})
	t.Run("success - concurrent sign-ins get distinct tokens", func(t *testing.T) {
		// arrange
		expectedUser := newTestUser(1, "signintwice", store.RoleUser)
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockUserReader.On("ReadUserByUsername", context.Background(), expectedUser.Username).
			Return(expectedUser, nil)
		mockSessionStore.On(
			"CreateSession",
			context.Background(),
			mock.AnythingOfType("*store.UserSession"),
		).Return(
			func(ctx context.Context, s *store.UserSession) (*store.UserSession, error) {
				return s, nil
			},
		)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act: back to back, inside the same second
		first, err := s.SignIn(context.Background(), expectedUser.Username, testUserPassword)
		assert.NoError(t, err)
		second, err := s.SignIn(context.Background(), expectedUser.Username, testUserPassword)

		// assert
		assert.NoError(t, err)
		assert.NotEqual(t, first.Session.Token, second.Session.Token)
	})
	t.Run("failure - unknown username", func(t *testing.T) {
		// arrange
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockUserReader.On("ReadUserByUsername", context.Background(), "nosuchuser").
			Return(nil, sql.ErrNoRows)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		su, err := s.SignIn(context.Background(), "nosuchuser", testUserPassword)

		// assert
		assert.Nil(t, su)
		assert.Equal(t, ErrUnknownUser, err)
	})
	t.Run("failure - wrong password", func(t *testing.T) {
		// arrange
		expectedUser := newTestUser(1, "wrongpassworduser", store.RoleUser)
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockUserReader.On("ReadUserByUsername", context.Background(), expectedUser.Username).
			Return(expectedUser, nil)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		su, err := s.SignIn(context.Background(), expectedUser.Username, "notthepassword")

		// assert
		assert.Nil(t, su)
		assert.Equal(t, ErrInvalidCredential, err)
		mockSessionStore.AssertNotCalled(t, "CreateSession")
	})
}

func TestAuthService_SignOut(t *testing.T) {
	t.Run("success - session is marked logged out", func(t *testing.T) {
		// arrange
		expectedUser := newTestUser(1, "signoutuser", store.RoleUser)
		now := time.Now().UTC()
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockSessionStore.On("ReadSessionByToken", context.Background(), "token").
			Return(&store.SessionWithUser{
				Session: store.UserSession{
					SessionID: 7,
					Token:     "token",
					UserID:    expectedUser.UserID,
					LoginAt:   now,
					ExpiresAt: now.Add(8 * time.Hour),
				},
				User: *expectedUser,
			}, nil)
		mockSessionStore.On(
			"UpdateSessionLogout",
			context.Background(),
			int64(7),
			mock.AnythingOfType("time.Time"),
		).Return(nil)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		su, err := s.SignOut(context.Background(), "token")

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, su)
		assert.NotNil(t, su.Session.LogoutAt)
		assert.Equal(t, expectedUser.UUID, su.User.UUID)
	})
	t.Run("success - expired session can still be signed out", func(t *testing.T) {
		// arrange
		expectedUser := newTestUser(1, "expiredsignout", store.RoleUser)
		now := time.Now().UTC()
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockSessionStore.On("ReadSessionByToken", context.Background(), "expiredtoken").
			Return(&store.SessionWithUser{
				Session: store.UserSession{
					SessionID: 8,
					Token:     "expiredtoken",
					UserID:    expectedUser.UserID,
					LoginAt:   now.Add(-9 * time.Hour),
					ExpiresAt: now.Add(-time.Hour),
				},
				User: *expectedUser,
			}, nil)
		mockSessionStore.On(
			"UpdateSessionLogout",
			context.Background(),
			int64(8),
			mock.AnythingOfType("time.Time"),
		).Return(nil)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		su, err := s.SignOut(context.Background(), "expiredtoken")

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, su.Session.LogoutAt)
	})
	t.Run("failure - unknown token", func(t *testing.T) {
		// arrange
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockSessionStore.On("ReadSessionByToken", context.Background(), "nosuchtoken").
			Return(nil, sql.ErrNoRows)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		su, err := s.SignOut(context.Background(), "nosuchtoken")

		// assert
		assert.Nil(t, su)
		assert.Equal(t, ErrSignOutNotSignedIn, err)
	})
	t.Run("failure - already signed out", func(t *testing.T) {
		// arrange
		expectedUser := newTestUser(1, "doublesignout", store.RoleUser)
		now := time.Now().UTC()
		logoutAt := now.Add(-time.Minute)
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockSessionStore.On("ReadSessionByToken", context.Background(), "loggedouttoken").
			Return(&store.SessionWithUser{
				Session: store.UserSession{
					SessionID: 9,
					Token:     "loggedouttoken",
					UserID:    expectedUser.UserID,
					LoginAt:   now.Add(-time.Hour),
					ExpiresAt: now.Add(7 * time.Hour),
					LogoutAt:  &logoutAt,
				},
				User: *expectedUser,
			}, nil)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		su, err := s.SignOut(context.Background(), "loggedouttoken")

		// assert
		assert.Nil(t, su)
		assert.Equal(t, ErrSignOutNotSignedIn, err)
		mockSessionStore.AssertNotCalled(
			t, "UpdateSessionLogout",
			context.Background(), int64(9), mock.AnythingOfType("time.Time"),
		)
	})
}

func TestAuthService_ValidateSession(t *testing.T) {
	t.Run("success - valid session resolves to its user", func(t *testing.T) {
		// arrange
		expectedUser := newTestUser(1, "validateuser", store.RoleUser)
		now := time.Now().UTC()
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockSessionStore.On("ReadSessionByToken", context.Background(), "validtoken").
			Return(&store.SessionWithUser{
				Session: store.UserSession{
					SessionID: 1,
					Token:     "validtoken",
					UserID:    expectedUser.UserID,
					LoginAt:   now,
					ExpiresAt: now.Add(8 * time.Hour),
				},
				User: *expectedUser,
			}, nil)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		u, err := s.ValidateSession(context.Background(), "validtoken")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, expectedUser.UUID, u.UUID)
	})
	t.Run("failure - unknown token", func(t *testing.T) {
		// arrange
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockSessionStore.On("ReadSessionByToken", context.Background(), "nosuchtoken").
			Return(nil, sql.ErrNoRows)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		u, err := s.ValidateSession(context.Background(), "nosuchtoken")

		// assert
		assert.Nil(t, u)
		assert.Equal(t, ErrNotSignedIn, err)
	})
	t.Run("failure - signed out session", func(t *testing.T) {
		// arrange
		expectedUser := newTestUser(1, "signedoutvalidate", store.RoleUser)
		now := time.Now().UTC()
		logoutAt := now.Add(-time.Minute)
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockSessionStore.On("ReadSessionByToken", context.Background(), "signedouttoken").
			Return(&store.SessionWithUser{
				Session: store.UserSession{
					SessionID: 2,
					Token:     "signedouttoken",
					UserID:    expectedUser.UserID,
					LoginAt:   now.Add(-time.Hour),
					ExpiresAt: now.Add(7 * time.Hour),
					LogoutAt:  &logoutAt,
				},
				User: *expectedUser,
			}, nil)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		u, err := s.ValidateSession(context.Background(), "signedouttoken")

		// assert
		assert.Nil(t, u)
		assert.Equal(t, ErrSignedOut, err)
	})
	t.Run("failure - expired session", func(t *testing.T) {
		// arrange
		expectedUser := newTestUser(1, "expiredvalidate", store.RoleUser)
		now := time.Now().UTC()
		mockUserReader := new(MockAuthUserReader)
		mockSessionStore := new(MockSessionStore)
		mockSessionStore.On("ReadSessionByToken", context.Background(), "expiredtoken").
			Return(&store.SessionWithUser{
				Session: store.UserSession{
					SessionID: 3,
					Token:     "expiredtoken",
					UserID:    expectedUser.UserID,
					LoginAt:   now.Add(-9 * time.Hour),
					ExpiresAt: now.Add(-time.Hour),
				},
				User: *expectedUser,
			}, nil)
		s := NewAuthService(mockUserReader, mockSessionStore, 8*time.Hour)

		// act
		u, err := s.ValidateSession(context.Background(), "expiredtoken")

		// assert
		assert.Nil(t, u)
		assert.Equal(t, ErrSessionExpired, err)
	})
}
