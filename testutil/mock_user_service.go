package testutil

import (
	"context"

	"github.com/haarala/answerhub/internal/service"
	"github.com/haarala/answerhub/internal/store"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(
	ctx context.Context,
	p service.SignupParams,
) (*store.User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}

func (m *MockUserService) GetUserProfile(
	ctx context.Context,
	token, userUUID string,
) (*store.User, error) {
	args := m.Called(ctx, token, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(
	ctx context.Context,
	token, userUUID string,
) (*store.User, error) {
	args := m.Called(ctx, token, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.User), args.Error(1)
}
