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

func createTestAnswer(t *testing.T, userID, questionID int64, content string) *Answer {
	t.Helper()
	a, err := answerStore.CreateAnswer(context.Background(), &Answer{
		UUID:       uuid.NewString(),
		UserID:     userID,
		QuestionID: questionID,
		Content:    content,
		CreatedOn:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestCreateAnswer(t *testing.T) {
	t.Run("success - answer is stored", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "createansweruser", RoleUser)
		q := createTestQuestion(t, u.UserID, "question to answer")

		// act
		a, err := answerStore.CreateAnswer(context.Background(), &Answer{
			UUID:       uuid.NewString(),
			UserID:     u.UserID,
			QuestionID: q.QuestionID,
			Content:    "this is the answer",
			CreatedOn:  time.Now().UTC(),
		})

		// assert
		assert.NoError(t, err)
		assert.NotNil(t, a)
		assert.NotEqual(t, int64(0), a.AnswerID)
		assert.Equal(t, q.QuestionID, a.QuestionID)
	})
	t.Run("failure - unknown question", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "createanswernoquestion", RoleUser)

		// act
		a, err := answerStore.CreateAnswer(context.Background(), &Answer{
			UUID:       uuid.NewString(),
			UserID:     u.UserID,
			QuestionID: 999999,
			Content:    "answer without a question",
			CreatedOn:  time.Now().UTC(),
		})

		// assert
		assert.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestReadAnswerByUUID(t *testing.T) {
	t.Run("success - answer is read", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "readansweruser", RoleUser)
		q := createTestQuestion(t, u.UserID, "question for read answer")
		created := createTestAnswer(t, u.UserID, q.QuestionID, "answer content")

		// act
		a, err := answerStore.ReadAnswerByUUID(context.Background(), created.UUID)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, created.AnswerID, a.AnswerID)
		assert.Equal(t, created.Content, a.Content)
	})
	t.Run("failure - unknown uuid", func(t *testing.T) {
		// act
		a, err := answerStore.ReadAnswerByUUID(context.Background(), uuid.NewString())

		// assert
		assert.Nil(t, a)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}

func TestListAnswersByQuestion(t *testing.T) {
	t.Run("success - answers are listed in creation order", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "listanswersuser", RoleUser)
		q := createTestQuestion(t, u.UserID, "question with answers")
		other := createTestQuestion(t, u.UserID, "question without these answers")
		first := createTestAnswer(t, u.UserID, q.QuestionID, "first answer")
		second := createTestAnswer(t, u.UserID, q.QuestionID, "second answer")
		createTestAnswer(t, u.UserID, other.QuestionID, "answer elsewhere")

		// act
		answers, err := answerStore.ListAnswersByQuestion(context.Background(), q.QuestionID)

		// assert
		assert.NoError(t, err)
		assert.Len(t, answers, 2)
		assert.Equal(t, first.UUID, answers[0].UUID)
		assert.Equal(t, second.UUID, answers[1].UUID)
	})
	t.Run("success - question without answers gets an empty list", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "listanswersempty", RoleUser)
		q := createTestQuestion(t, u.UserID, "unanswered question")

		// act
		answers, err := answerStore.ListAnswersByQuestion(context.Background(), q.QuestionID)

		// assert
		assert.NoError(t, err)
		assert.Empty(t, answers)
	})
}

func TestUpdateAnswerContent(t *testing.T) {
	t.Run("success - content is replaced", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "updateansweruser", RoleUser)
		q := createTestQuestion(t, u.UserID, "question for update answer")
		created := createTestAnswer(t, u.UserID, q.QuestionID, "original answer")

		// act
		err := answerStore.UpdateAnswerContent(
			context.Background(), created.AnswerID, "edited answer",
		)

		// assert
		assert.NoError(t, err)
		a, err := answerStore.ReadAnswerByUUID(context.Background(), created.UUID)
		assert.NoError(t, err)
		assert.Equal(t, "edited answer", a.Content)
	})
}

func TestDeleteAnswer(t *testing.T) {
	t.Run("success - answer is removed, question remains", func(t *testing.T) {
		// arrange
		u := createTestUser(t, "deleteansweruser", RoleUser)
		q := createTestQuestion(t, u.UserID, "question for delete answer")
		a := createTestAnswer(t, u.UserID, q.QuestionID, "answer to delete")

		// act
		err := answerStore.DeleteAnswer(context.Background(), a.AnswerID)

		// assert
		assert.NoError(t, err)
		_, err = answerStore.ReadAnswerByUUID(context.Background(), a.UUID)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		_, err = questionStore.ReadQuestionByUUID(context.Background(), q.UUID)
		assert.NoError(t, err)
	})
}
