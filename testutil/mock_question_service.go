package testutil

import (
	"context"

	"github.com/haarala/answerhub/internal/store"
	"github.com/stretchr/testify/mock"
)

type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) CreateQuestion(
	ctx context.Context,
	token, content string,
) (*store.Question, error) {
	args := m.Called(ctx, token, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Question), args.Error(1)
}

func (m *MockQuestionService) GetAllQuestions(
	ctx context.Context,
	token string,
) ([]*store.Question, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Question), args.Error(1)
}

func (m *MockQuestionService) GetAllQuestionsByUser(
	ctx context.Context,
	token, userUUID string,
) ([]*store.Question, error) {
	args := m.Called(ctx, token, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Question), args.Error(1)
}

func (m *MockQuestionService) EditQuestionContent(
	ctx context.Context,
	token, questionUUID, content string,
) (*store.Question, error) {
	args := m.Called(ctx, token, questionUUID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Question), args.Error(1)
}

func (m *MockQuestionService) DeleteQuestion(
	ctx context.Context,
	token, questionUUID string,
) (*store.Question, error) {
	args := m.Called(ctx, token, questionUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Question), args.Error(1)
}
