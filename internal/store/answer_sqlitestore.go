package store

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type AnswerSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewAnswerSQLiteStore(rdb, rwdb *sql.DB) *AnswerSQLiteStore {
	return &AnswerSQLiteStore{rdb, rwdb}
}

func (store *AnswerSQLiteStore) CreateAnswer(ctx context.Context, answer *Answer) (*Answer, error) {
	err := sqlscan.Get(
		ctx, store.rwdb, answer,
		`
		insert into answers (
			uuid,
			user_id,
			question_id,
			content,
			created_on
		)
		values ($1, $2, $3, $4, $5)
		returning answer_id
		`,
		answer.UUID,
		answer.UserID,
		answer.QuestionID,
		answer.Content,
		answer.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return answer, nil
}

func (store *AnswerSQLiteStore) ReadAnswerByUUID(ctx context.Context, uuid string) (*Answer, error) {
	a := new(Answer)
	query := "select * from answers where uuid = $1"
	if err := sqlscan.Get(ctx, store.rdb, a, query, uuid); err != nil {
		return nil, err
	}
	return a, nil
}

func (store *AnswerSQLiteStore) ListAnswersByQuestion(
	ctx context.Context,
	questionID int64,
) ([]*Answer, error) {
	query := "select * from answers where question_id = $1 order by created_on"
	answers := make([]*Answer, 0)
	err := sqlscan.Select(ctx, store.rdb, &answers, query, questionID)
	return answers, err
}

func (store *AnswerSQLiteStore) UpdateAnswerContent(
	ctx context.Context,
	answerID int64,
	content string,
) error {
	query := `update answers
	set content = $1
	where answer_id = $2`
	_, err := store.rwdb.ExecContext(ctx, query, content, answerID)
	return err
}

func (store *AnswerSQLiteStore) DeleteAnswer(ctx context.Context, answerID int64) error {
	query := "delete from answers where answer_id = $1"
	_, err := store.rwdb.ExecContext(ctx, query, answerID)
	return err
}
