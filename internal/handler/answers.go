package handler

import (
	"context"
	"net/http"

	"github.com/haarala/answerhub/internal/store"

	"github.com/labstack/echo/v4"
)

type AnswerServicer interface {
	CreateAnswer(ctx context.Context, token, questionUUID, content string) (*store.Answer, error)
	EditAnswerContent(ctx context.Context, token, answerUUID, content string) (*store.Answer, error)
	DeleteAnswer(ctx context.Context, token, answerUUID string) (*store.Answer, error)
	GetAllAnswersToQuestion(ctx context.Context, token, questionUUID string) ([]*store.Answer, error)
}

func SetupAnswerRoutes(g *echo.Group, answerService AnswerServicer) {
	h := NewAnswerHandler(answerService)
	g.POST("/question/:question_id/answer/create", h.PostAnswer)
	g.PUT("/answer/edit/:answer_id", h.PutAnswer)
	g.DELETE("/answer/delete/:answer_id", h.DeleteAnswer)
	g.GET("/answer/all/:question_id", h.GetAllAnswersToQuestion)
}

type AnswerHandler struct {
	answerService AnswerServicer
}

func NewAnswerHandler(answerService AnswerServicer) *AnswerHandler {
	return &AnswerHandler{answerService}
}

func (h *AnswerHandler) PostAnswer(c echo.Context) error {
	ap := new(AnswerParams)
	if err := c.Bind(ap); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid answer data").WithInternal(err)
	}

	a, err := h.answerService.CreateAnswer(
		c.Request().Context(), getCtxToken(c), ap.QuestionID, ap.Content,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, statusResponse{ID: a.UUID, Status: "ANSWER CREATED"})
}

func (h *AnswerHandler) PutAnswer(c echo.Context) error {
	ap := new(AnswerParams)
	if err := c.Bind(ap); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid answer data").WithInternal(err)
	}

	a, err := h.answerService.EditAnswerContent(
		c.Request().Context(), getCtxToken(c), ap.AnswerID, ap.Content,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{ID: a.UUID, Status: "ANSWER EDITED"})
}

func (h *AnswerHandler) DeleteAnswer(c echo.Context) error {
	ap := new(AnswerParams)
	if err := c.Bind(ap); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid answer id").WithInternal(err)
	}

	a, err := h.answerService.DeleteAnswer(c.Request().Context(), getCtxToken(c), ap.AnswerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{ID: a.UUID, Status: "ANSWER DELETED"})
}

func (h *AnswerHandler) GetAllAnswersToQuestion(c echo.Context) error {
	ap := new(AnswerParams)
	if err := c.Bind(ap); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid question id").WithInternal(err)
	}

	answers, err := h.answerService.GetAllAnswersToQuestion(
		c.Request().Context(), getCtxToken(c), ap.QuestionID,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, answers)
}
