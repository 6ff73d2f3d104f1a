package testutil

import (
	"context"

	"github.com/haarala/answerhub/internal/store"
	"github.com/stretchr/testify/mock"
)

type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) CreateAnswer(
	ctx context.Context,
	token, questionUUID, content string,
) (*store.Answer, error) {
	args := m.Called(ctx, token, questionUUID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Answer), args.Error(1)
}

func (m *MockAnswerService) EditAnswerContent(
	ctx context.Context,
	token, answerUUID, content string,
) (*store.Answer, error) {
	args := m.Called(ctx, token, answerUUID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Answer), args.Error(1)
}

func (m *MockAnswerService) DeleteAnswer(
	ctx context.Context,
	token, answerUUID string,
) (*store.Answer, error) {
	args := m.Called(ctx, token, answerUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Answer), args.Error(1)
}

func (m *MockAnswerService) GetAllAnswersToQuestion(
	ctx context.Context,
	token, questionUUID string,
) ([]*store.Answer, error) {
	args := m.Called(ctx, token, questionUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Answer), args.Error(1)
}
