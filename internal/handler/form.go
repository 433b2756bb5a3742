package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
)

func isFormSubmission(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEApplicationForm) ||
		strings.HasPrefix(ct, echo.MIMEMultipartForm)
}

// formFlag implements the checkbox rule: the flag is true iff the field name
// appears in the posted form at all, whatever its value.
func formFlag(c echo.Context, field string) bool {
	if err := c.Request().ParseForm(); err != nil {
		return false
	}
	_, ok := c.Request().PostForm[field]
	return ok
}
