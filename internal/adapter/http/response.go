package http

import (
	"errors"
	"fmt"
	"net/http"

	"agrifin-backend/internal/domain/apperror"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// envelope is the response shape every endpoint shares.
type envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Count   *int         `json:"count,omitempty"`
	Data    any          `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func respond(c echo.Context, code int, msg string, data any) error {
	return c.JSON(code, envelope{Success: true, Message: msg, Data: data})
}

func respondList[T any](c echo.Context, items []T) error {
	n := len(items)
	return c.JSON(http.StatusOK, envelope{Success: true, Count: &n, Data: items})
}

// NewErrorHandler renders every error returned by a handler or middleware
// in the envelope. Unexpected errors are logged and reported as a bare
// "Server Error".
func NewErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code, body := render(err)
		if code >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.Error(err),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			log.Warn("write error response", zap.Error(err))
		}
	}
}

func render(err error) (int, envelope) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprint(he.Message)
		if he.Code == http.StatusNotFound {
			msg = "Route not found"
		}
		return he.Code, envelope{Message: msg}
	}

	var ve *apperror.ValidationError
	if errors.As(err, &ve) {
		msg := "Validation Error"
		if len(ve.Fields) == 1 {
			msg = ve.Fields[0].Message
		}
		return http.StatusBadRequest, envelope{Message: msg, Error: ve.Error(), Errors: ve.Fields}
	}

	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest, envelope{Message: apperror.Message(err)}
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized, envelope{Message: apperror.Message(err)}
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden, envelope{Message: apperror.Message(err)}
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound, envelope{Message: apperror.Message(err)}
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict, envelope{Message: apperror.Message(err)}
	}
	return http.StatusInternalServerError, envelope{Message: "Server Error"}
}
