package http

import (
	"errors"
	"fmt"
	stdhttp "net/http"

	"podcast-service/internal/http/middleware"
	apperrors "podcast-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

const (
	jsonKeyOK    = "ok"
	jsonKeyError = "error"

	msgResourceNotFound = "Resource not found"
	msgForbidden        = "Forbidden"
	msgBadRequest       = "Bad request"
	msgAlreadyExists    = "Resource already exists"
	msgInternalError    = "Internal server error occurred."
)

// errorHandler catches errors that escape the handlers — router misses,
// wrong-method 405s, body-limit 413s, stray sentinels — and keeps the
// ok/error response envelope for them. Handler-level failures normally
// respond before returning, so most requests never reach it.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := stdhttp.StatusInternalServerError
	message := msgInternalError

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	} else {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			code = stdhttp.StatusNotFound
			message = msgResourceNotFound
		case errors.Is(err, apperrors.ErrForbidden):
			code = stdhttp.StatusForbidden
			message = msgForbidden
		case errors.Is(err, apperrors.ErrBadRequest):
			code = stdhttp.StatusBadRequest
			message = msgBadRequest
		case errors.Is(err, apperrors.ErrConflict):
			code = stdhttp.StatusConflict
			message = msgAlreadyExists
		}

		// A client-facing AppError carries a better message than the
		// sentinel default.
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && code < 500 {
			message = appErr.Message
		}
	}

	requestID := middleware.GetRequestID(c)
	if code >= 500 {
		c.Logger().Errorf("request_id=%s status=%d error=%v", requestID, code, err)
		// Internal detail stays out of the response.
		message = msgInternalError
	} else {
		c.Logger().Warnf("request_id=%s status=%d error=%v", requestID, code, err)
	}

	if err := c.JSON(code, map[string]any{
		jsonKeyOK:    false,
		jsonKeyError: message,
	}); err != nil {
		c.Logger().Error(err)
	}
}
