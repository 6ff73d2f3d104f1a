package store

import (
	"context"
	"time"
)

type Question struct {
	QuestionID int64     `json:"-"`
	UUID       string    `json:"id"`
	UserID     int64     `json:"-"`
	Content    string    `json:"content"`
	CreatedOn  time.Time `json:"created_on"`
}

type QuestionStore interface {
	CreateQuestion(context.Context, *Question) (*Question, error)
	ReadQuestionByUUID(context.Context, string) (*Question, error)
	ListQuestions(context.Context) ([]*Question, error)
	ListQuestionsByUser(context.Context, int64) ([]*Question, error)
	UpdateQuestionContent(context.Context, int64, string) error
	DeleteQuestion(context.Context, int64) error
}
