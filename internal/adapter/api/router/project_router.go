package router

import (
	"github.com/labstack/echo/v4"

	"motionstock/internal/adapter/api/handler"
)

func SetupProjectRouter(api *echo.Group) {
	projectHandler := handler.GetProjectHandler()

	api.POST("/projects", projectHandler.CreateProject)
	api.GET("/projects", projectHandler.ListProjects)
	api.GET("/projects/:id", projectHandler.GetProject)
	api.PUT("/projects/:id", projectHandler.UpdateProject)
	api.DELETE("/projects/:id", projectHandler.DeleteProject)
}
