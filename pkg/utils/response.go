package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
)

// ErrorResponse переводит ошибку сервиса в JSON-ответ вида {"error": "..."}.
// Коды: HttpError несёт свой код, ошибки валидации -> 400, ErrNotFound -> 404,
// всё остальное -> 500
// с сырым текстом ошибки (контракт API, без санитизации).
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := err.Error()

	var httpErr *apperrors.HttpError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
	}

	if code >= http.StatusInternalServerError && logger != nil {
		logger.Error("Ответ с ошибкой сервера", zap.Int("code", code), zap.Error(err))
	}

	return ctx.JSON(code, echo.Map{"error": message})
}

// MessageResponse отвечает телом {"message": "..."} (используется при удалении).
func MessageResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, echo.Map{"message": message})
}
