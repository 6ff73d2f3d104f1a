package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/haarala/answerhub/internal/store"

	"github.com/google/uuid"
)

type QuestionReader interface {
	ReadQuestionByUUID(context.Context, string) (*store.Question, error)
}

type AnswerStore interface {
	CreateAnswer(context.Context, *store.Answer) (*store.Answer, error)
	ReadAnswerByUUID(context.Context, string) (*store.Answer, error)
	ListAnswersByQuestion(context.Context, int64) ([]*store.Answer, error)
	UpdateAnswerContent(context.Context, int64, string) error
	DeleteAnswer(context.Context, int64) error
}

type AnswerService struct {
	answerStore   AnswerStore
	questionStore QuestionReader
	auth          Authenticator
}

func NewAnswerService(
	answerStore AnswerStore,
	questionStore QuestionReader,
	auth Authenticator,
) *AnswerService {
	return &AnswerService{
		answerStore:   answerStore,
		questionStore: questionStore,
		auth:          auth,
	}
}

func (s *AnswerService) CreateAnswer(
	ctx context.Context,
	token, questionUUID, content string,
) (*store.Answer, error) {
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
	return s.answerStore.CreateAnswer(ctx, &store.Answer{
		UUID:       uuid.NewString(),
		UserID:     actingUser.UserID,
		QuestionID: q.QuestionID,
		Content:    content,
		CreatedOn:  time.Now().UTC(),
	})
}

// EditAnswerContent replaces an answer's content. Owner only, no admin
// override.
func (s *AnswerService) EditAnswerContent(
	ctx context.Context,
	token, answerUUID, content string,
) (*store.Answer, error) {
	actingUser, err := s.auth.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	a, err := s.answerStore.ReadAnswerByUUID(ctx, answerUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAnswerNotFound
		}
		return nil, err
	}
	if err := Authorize(actingUser, a.UserID, ResourceAnswer, OpEdit); err != nil {
		return nil, err
	}
	if err := s.answerStore.UpdateAnswerContent(ctx, a.AnswerID, content); err != nil {
		return nil, err
	}
	a.Content = content
	return a, nil
}

// DeleteAnswer removes an answer. Owner or admin.
func (s *AnswerService) DeleteAnswer(
	ctx context.Context,
	token, answerUUID string,
) (*store.Answer, error) {
	actingUser, err := s.auth.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	a, err := s.answerStore.ReadAnswerByUUID(ctx, answerUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAnswerNotFound
		}
		return nil, err
	}
	if err := Authorize(actingUser, a.UserID, ResourceAnswer, OpDelete); err != nil {
		return nil, err
	}
	if err := s.answerStore.DeleteAnswer(ctx, a.AnswerID); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnswerService) GetAllAnswersToQuestion(
	ctx context.Context,
	token, questionUUID string,
) ([]*store.Answer, error) {
	if _, err := s.auth.ValidateSession(ctx, token); err != nil {
		return nil, err
	}
	q, err := s.questionStore.ReadQuestionByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	answers, err := s.answerStore.ListAnswersByQuestion(ctx, q.QuestionID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}
	return answers, nil
}
