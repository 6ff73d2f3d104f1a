package store

import (
	"context"
	"time"
)

type Answer struct {
	AnswerID   int64     `json:"-"`
	UUID       string    `json:"id"`
	UserID     int64     `json:"-"`
	QuestionID int64     `json:"-"`
	Content    string    `json:"content"`
	CreatedOn  time.Time `json:"created_on"`
}

type AnswerStore interface {
	CreateAnswer(context.Context, *Answer) (*Answer, error)
	ReadAnswerByUUID(context.Context, string) (*Answer, error)
	ListAnswersByQuestion(context.Context, int64) ([]*Answer, error)
	UpdateAnswerContent(context.Context, int64, string) error
	DeleteAnswer(context.Context, int64) error
}
