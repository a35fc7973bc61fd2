package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runTeamRouter(api *echo.Group, ctrl *controllers.TeamController) {
	api.GET("/teams", ctrl.GetTeams)
	api.GET("/teams/:id", ctrl.FindTeam)
	api.POST("/teams", ctrl.CreateTeam)
	api.PUT("/teams/:id", ctrl.UpdateTeam)
	api.DELETE("/teams/:id", ctrl.DeleteTeam)
}
