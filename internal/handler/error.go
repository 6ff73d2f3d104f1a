package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/haarala/answerhub/internal/service"
	"github.com/labstack/echo/v4"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func statusForCode(code string) int {
	switch {
	case strings.HasPrefix(code, "SGR-"):
		return http.StatusConflict
	case code == "ATHR-003":
		return http.StatusForbidden
	case strings.HasPrefix(code, "ATH") || strings.HasPrefix(code, "SGO-"):
		return http.StatusUnauthorized
	case strings.HasPrefix(code, "USR-"):
		return http.StatusNotFound
	case strings.HasPrefix(code, "QUES-") || strings.HasPrefix(code, "ANS-"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var svcErr *service.Error
	switch {
	case errors.As(err, &svcErr):
		if err := c.JSON(
			statusForCode(svcErr.Code),
			errorResponse{Code: svcErr.Code, Message: svcErr.Message},
		); err != nil {
			log.Printf("err returning json error: %+v\n", err)
		}
	default:
		var he *echo.HTTPError
		if errors.As(err, &he) {
			message, ok := he.Message.(string)
			if !ok {
				message = http.StatusText(he.Code)
			}
			c.Logger().Errorf(
				"handler internal error %s [%d]: %+v\n",
				c.Request().URL.Path, he.Code, he.Internal,
			)
			if err := c.JSON(
				he.Code,
				errorResponse{Code: "GEN-001", Message: message},
			); err != nil {
				log.Printf("err returning json error: %+v\n", err)
			}
			return
		}
		c.Logger().Errorf("handler error: %+v\n", err)
		if err := c.JSON(
			http.StatusInternalServerError,
			errorResponse{Code: "GEN-001", Message: "something went wrong"},
		); err != nil {
			log.Printf("err returning json error: %+v\n", err)
		}
	}
}

func isUniqueConstraintError(err error) bool {
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		return sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
