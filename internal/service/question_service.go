package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/haarala/answerhub/internal/store"

	"github.com/google/uuid"
)

type UserReader interface {
	ReadUserByUUID(context.Context, string) (*store.User, error)
}

type QuestionStore interface {
	CreateQuestion(context.Context, *store.Question) (*store.Question, error)
	ReadQuestionByUUID(context.Context, string) (*store.Question, error)
	ListQuestions(context.Context) ([]*store.Question, error)
	ListQuestionsByUser(context.Context, int64) ([]*store.Question, error)
	UpdateQuestionContent(context.Context, int64, string) error
	DeleteQuestion(context.Context, int64) error
}

type QuestionService struct {
	questionStore QuestionStore
	userStore     UserReader
	auth          Authenticator
}

func NewQuestionService(
	questionStore QuestionStore,
	userStore UserReader,
	auth Authenticator,
) *QuestionService {
	return &QuestionService{
		questionStore: questionStore,
		userStore:     userStore,
		auth:          auth,
	}
}

func (s *QuestionService) CreateQuestion(
	ctx context.Context,
	token, content string,
) (*store.Question, error) {
	actingUser, err := s.auth.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.questionStore.CreateQuestion(ctx, &store.Question{
		UUID:      uuid.NewString(),
		UserID:    actingUser.UserID,
		Content:   content,
		CreatedOn: time.Now().UTC(),
	})
}

func (s *QuestionService) GetAllQuestions(
	ctx context.Context,
	token string,
) ([]*store.Question, error) {
	if _, err := s.auth.ValidateSession(ctx, token); err != nil {
		return nil, err
	}
	return s.questionStore.ListQuestions(ctx)
}

func (s *QuestionService) GetAllQuestionsByUser(
	ctx context.Context,
	token, userUUID string,
) ([]*store.Question, error) {
	if _, err := s.auth.ValidateSession(ctx, token); err != nil {
		return nil, err
	}
	u, err := s.userStore.ReadUserByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.questionStore.ListQuestionsByUser(ctx, u.UserID)
}

// EditQuestionContent replaces a question's content. Owner only, no admin
// override.
func (s *QuestionService) EditQuestionContent(
	ctx context.Context,
	token, questionUUID, content string,
) (*store.Question, error) {
	actingUser, err := s.auth.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	q, err := s.questionStore.ReadQuestionByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if err := Authorize(actingUser, q.UserID, ResourceQuestion, OpEdit); err != nil {
		return nil, err
	}
	if err := s.questionStore.UpdateQuestionContent(ctx, q.QuestionID, content); err != nil {
		return nil, err
	}
	q.Content = content
	return q, nil
}

// DeleteQuestion removes a question. Owner or admin.
func (s *QuestionService) DeleteQuestion(
	ctx context.Context,
	token, questionUUID string,
) (*store.Question, error) {
	actingUser, err := s.auth.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	q, err := s.questionStore.ReadQuestionByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	if err := Authorize(actingUser, q.UserID, ResourceQuestion, OpDelete); err != nil {
		return nil, err
	}
	if err := s.questionStore.DeleteQuestion(ctx, q.QuestionID); err != nil {
		return nil, err
	}
	return q, nil
}
