package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck - проба живости, по ней клиент решает, доступен ли сервер.
func HealthCheck(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "GearGuard API is running",
	})
}
