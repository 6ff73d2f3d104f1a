package handler

import (
	"github.com/labstack/echo/v4"
)

func getCtxToken(c echo.Context) string {
	if t, ok := c.Get("token").(string); ok {
		return t
	}
	return ""
}
