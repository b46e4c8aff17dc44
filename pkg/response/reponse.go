package response

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "motionstock/pkg/errors"
)

// ErrorResponse is the body of every failed request. Detail repeats the message
// for clients that only read a flat error string.
type ErrorResponse struct {
	Success   bool       `json:"success"`
	Error     *ErrorInfo `json:"error"`
	Detail    string     `json:"detail"`
	Timestamp string     `json:"timestamp"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return write(c, appErr.Status, appErr.Code, appErr.Message)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		return write(c, httpErr.Code, codeForStatus(httpErr.Code), message)
	}

	return write(c, http.StatusInternalServerError, apperrors.CodeInternal, "An unexpected error occurred")
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return apperrors.CodeNotFound
	case status == http.StatusTooManyRequests:
		return apperrors.CodeTooManyRequests
	case status >= http.StatusInternalServerError:
		return apperrors.CodeInternal
	default:
		return apperrors.CodeBadRequest
	}
}

func write(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorResponse{
		Success:   false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Detail:    message,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())
		param := err.Param()

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "min":
			message = field + " must be at least " + param
		case "max":
			message = field + " must be at most " + param
		case "oneof":
			message = field + " must be one of: " + param
		default:
			message = field + " is invalid"
		}

		return write(c, http.StatusBadRequest, apperrors.CodeValidation, message)
	}

	return write(c, http.StatusBadRequest, apperrors.CodeValidation, "Invalid input data")
}
