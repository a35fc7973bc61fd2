package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runEquipmentRouter(api *echo.Group, ctrl *controllers.EquipmentController) {
	api.GET("/equipment", ctrl.GetEquipments)
	api.GET("/equipment/:id", ctrl.FindEquipment)
	api.GET("/equipment/:id/requests", ctrl.GetEquipmentRequests)
	api.POST("/equipment", ctrl.CreateEquipment)
	api.PUT("/equipment/:id", ctrl.UpdateEquipment)
	api.DELETE("/equipment/:id", ctrl.DeleteEquipment)
}
