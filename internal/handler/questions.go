package handler

import (
	"context"
	"net/http"

	"github.com/haarala/answerhub/internal/store"

	"github.com/labstack/echo/v4"
)

type QuestionServicer interface {
	CreateQuestion(ctx context.Context, token, content string) (*store.Question, error)
	GetAllQuestions(ctx context.Context, token string) ([]*store.Question, error)
	GetAllQuestionsByUser(ctx context.Context, token, userUUID string) ([]*store.Question, error)
	EditQuestionContent(ctx context.Context, token, questionUUID, content string) (*store.Question, error)
	DeleteQuestion(ctx context.Context, token, questionUUID string) (*store.Question, error)
}

func SetupQuestionRoutes(g *echo.Group, questionService QuestionServicer) {
	h := NewQuestionHandler(questionService)
	g.POST("/question/create", h.PostQuestion)
	g.GET("/question/all", h.GetAllQuestions)
	g.GET("/question/all/:user_id", h.GetAllQuestionsByUser)
	g.PUT("/question/edit/:question_id", h.PutQuestion)
	g.DELETE("/question/delete/:question_id", h.DeleteQuestion)
}

type QuestionHandler struct {
	questionService QuestionServicer
}

func NewQuestionHandler(questionService QuestionServicer) *QuestionHandler {
	return &QuestionHandler{questionService}
}

func (h *QuestionHandler) PostQuestion(c echo.Context) error {
	qp := new(QuestionParams)
	if err := c.Bind(qp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid question data").WithInternal(err)
	}

	q, err := h.questionService.CreateQuestion(c.Request().Context(), getCtxToken(c), qp.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, statusResponse{ID: q.UUID, Status: "QUESTION CREATED"})
}

func (h *QuestionHandler) GetAllQuestions(c echo.Context) error {
	questions, err := h.questionService.GetAllQuestions(c.Request().Context(), getCtxToken(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) GetAllQuestionsByUser(c echo.Context) error {
	up := new(UserParams)
	if err := c.Bind(up); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id").WithInternal(err)
	}

	questions, err := h.questionService.GetAllQuestionsByUser(
		c.Request().Context(), getCtxToken(c), up.UserID,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) PutQuestion(c echo.Context) error {
	qp := new(QuestionParams)
	if err := c.Bind(qp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid question data").WithInternal(err)
	}

	q, err := h.questionService.EditQuestionContent(
		c.Request().Context(), getCtxToken(c), qp.QuestionID, qp.Content,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{ID: q.UUID, Status: "QUESTION EDITED"})
}

func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	qp := new(QuestionParams)
	if err := c.Bind(qp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid question id").WithInternal(err)
	}

	q, err := h.questionService.DeleteQuestion(
		c.Request().Context(), getCtxToken(c), qp.QuestionID,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{ID: q.UUID, Status: "QUESTION DELETED"})
}
