package store

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type QuestionSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewQuestionSQLiteStore(rdb, rwdb *sql.DB) *QuestionSQLiteStore {
	return &QuestionSQLiteStore{rdb, rwdb}
}

func (store *QuestionSQLiteStore) CreateQuestion(
	ctx context.Context,
	question *Question,
) (*Question, error) {
	err := sqlscan.Get(
		ctx, store.rwdb, question,
		`
		insert into questions (
			uuid,
			user_id,
			content,
			created_on
		)
		values ($1, $2, $3, $4)
		returning question_id
		`,
		question.UUID,
		question.UserID,
		question.Content,
		question.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (store *QuestionSQLiteStore) ReadQuestionByUUID(
	ctx context.Context,
	uuid string,
) (*Question, error) {
	q := new(Question)
	query := "select * from questions where uuid = $1"
	if err := sqlscan.Get(ctx, store.rdb, q, query, uuid); err != nil {
		return nil, err
	}
	return q, nil
}

func (store *QuestionSQLiteStore) ListQuestions(ctx context.Context) ([]*Question, error) {
	query := "select * from questions order by created_on"
	questions := make([]*Question, 0)
	err := sqlscan.Select(ctx, store.rdb, &questions, query)
	return questions, err
}

func (store *QuestionSQLiteStore) ListQuestionsByUser(
	ctx context.Context,
	userID int64,
) ([]*Question, error) {
	query := "select * from questions where user_id = $1 order by created_on"
	questions := make([]*Question, 0)
	err := sqlscan.Select(ctx, store.rdb, &questions, query, userID)
	return questions, err
}

func (store *QuestionSQLiteStore) UpdateQuestionContent(
	ctx context.Context,
	questionID int64,
	content string,
) error {
	query := `update questions
	set content = $1
	where question_id = $2`
	_, err := store.rwdb.ExecContext(ctx, query, content, questionID)
	return err
}

func (store *QuestionSQLiteStore) DeleteQuestion(ctx context.Context, questionID int64) error {
	query := "delete from questions where question_id = $1"
	_, err := store.rwdb.ExecContext(ctx, query, questionID)
	return err
}
