package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createTestQuestion(t *testing.T, userID int64, content string) *Question {
	t.Helper()
	q, err := questionStore.CreateQuestion(context.Background(), &Question{
		UUID:      uuid.NewString(),
		UserID:    userID,
		Content:   content,
		CreatedOn: time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func TestCreateQuestion(t *testing.T) {
	t.Run("success - question is stored", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "createquestionuser", RoleUser)

		// act
		q, err := questionStore.CreateQuestion(context.Background(), &Question{
			UUID:      uuid.NewString(),
			UserID:    u.UserID,
			Content:   "what is the capital of Finland?",
			CreatedOn: time.Now().UTC(),
		})

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, q)
		assert.NotEqual(t, int64(0), q.QuestionID)
		assert.Equal(t, u.UserID, q.UserID)
	})
	t.Run("failure - unknown user", func(t *testing.T) {
		// act
		q, err := questionStore.CreateQuestion(context.Background(), &Question{
			UUID:      uuid.NewString(),
			UserID:    999999,
			Content:   "question without an owner",
			CreatedOn: time.Now().UTC(),
		})

		// assert
		assert.Error(t, err)
		assert.Nil(t, q)
	})
}

func TestReadQuestionByUUID(t *testing.T) {
	t.Run("success - question is read", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "readquestionuser", RoleUser)
		created := createTestQuestion(t, u.UserID, "how do goroutines work?")

		// act
		q, err := questionStore.ReadQuestionByUUID(context.Background(), created.UUID)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, created.QuestionID, q.QuestionID)
		assert.Equal(t, created.Content, q.Content)
	})
	t.Run("failure - unknown uuid", func(t *testing.T) {
		// act
		q, err := questionStore.ReadQuestionByUUID(context.Background(), uuid.NewString())

		// assert
		assert.Nil(t, q)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}

func TestListQuestionsByUser(t *testing.T) {
	t.Run("success - only the user's questions are listed", func(t *testing.T) {
		// arrange
		owner := createTestUser(t, "listquestionsowner", RoleUser)
		other := createTestUser(t, "listquestionsother", RoleUser)
		first := createTestQuestion(t, owner.UserID, "first question")
		second := createTestQuestion(t, owner.UserID, "second question")
		createTestQuestion(t, other.UserID, "someone else's question")

		// act
		questions, err := questionStore.ListQuestionsByUser(context.Background(), owner.UserID)

		// assert
		assert.NoError(t, err)
		assert.Len(t, questions, 2)
		assert.Equal(t, first.UUID, questions[0].UUID)
		assert.Equal(t, second.UUID, questions[1].UUID)
	})
	t.Run("success - user without questions gets an empty list", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "listquestionsempty", RoleUser)

		// act
		questions, err := questionStore.ListQuestionsByUser(context.Background(), u.UserID)

		// assert
		assert.NoError(t, err)
		assert.Empty(t, questions)
	})
}

func TestUpdateQuestionContent(t *testing.T) {
	t.Run("success - content is replaced", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "updatequestionuser", RoleUser)
		created := createTestQuestion(t, u.UserID, "original content")

		// act
		err := questionStore.UpdateQuestionContent(
			context.Background(), created.QuestionID, "edited content",
		)

		// assert
		assert.NoError(t, err)
		q, err := questionStore.ReadQuestionByUUID(context.Background(), created.UUID)
		assert.NoError(t, err)
		assert.Equal(t, "edited content", q.Content)
	})
}

func TestDeleteQuestion(t *testing.T) {
	t.Run("success - answers cascade with the question", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "deletequestionuser", RoleUser)
		q := createTestQuestion(t, u.UserID, "question to delete")
		a, err := answerStore.CreateAnswer(context.Background(), &Answer{
			UUID:       uuid.NewString(),
			UserID:     u.UserID,
			QuestionID: q.QuestionID,
			Content:    "answer to cascade",
			CreatedOn:  time.Now().UTC(),
		})
		assert.NoError(t, err)

		// act
		err = questionStore.DeleteQuestion(context.Background(), q.QuestionID)

		// assert
		assert.NoError(t, err)
		_, err = questionStore.ReadQuestionByUUID(context.Background(), q.UUID)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		_, err = answerStore.ReadAnswerByUUID(context.Background(), a.UUID)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}
