package testutil

import (
	"context"

	"github.com/haarala/answerhub/internal/store"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignIn(
	ctx context.Context,
	username, password string,
) (*store.SessionWithUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SessionWithUser), args.Error(1)
}

func (m *MockAuthService) SignOut(
	ctx context.Context,
	token string,
) (*store.SessionWithUser, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SessionWithUser), args.Error(1)
}

func (m *MockAuthService) ValidateSession(
	ctx context.Context,
	token string,
) (*store.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}
