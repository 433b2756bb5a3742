package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ErrorHandler is the fallback for errors no handler translated itself.
// Handlers on write routes map their own errors so a data-mutating request
// never surfaces a bare 500; this catches the read paths and panics.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = http.StatusNotFound
		msg = "not found"
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
