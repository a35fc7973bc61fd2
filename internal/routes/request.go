package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(api *echo.Group, ctrl *controllers.RequestController, reportCtrl *controllers.ReportController) {
	api.GET("/requests/stats/overview", ctrl.GetStatsOverview)
	api.GET("/requests/report", reportCtrl.GetReport)

	api.GET("/requests", ctrl.GetRequests)
	api.GET("/requests/:id", ctrl.FindRequest)
	api.POST("/requests", ctrl.CreateRequest)
	api.PUT("/requests/:id", ctrl.UpdateRequest)
	api.PATCH("/requests/:id/stage", ctrl.UpdateRequestStage)
	api.DELETE("/requests/:id", ctrl.DeleteRequest)
}
