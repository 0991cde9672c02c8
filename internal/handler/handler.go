package handler

import (
	"github.com/labstack/echo/v4"

	"tastetrack/internal/errors"
	"tastetrack/internal/model"
	"tastetrack/internal/response"
)

// terminalHeader selects which till's current sale a staging call works on.
const terminalHeader = "X-Terminal-ID"

func terminalID(c echo.Context) string {
	if t := c.Request().Header.Get(terminalHeader); t != "" {
		return t
	}
	return model.DefaultTerminal
}

// fail translates a domain error into an enveloped HTTP response.
func fail(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, response.Fail(httpErr.Message))
}
