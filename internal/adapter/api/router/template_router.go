package router

import (
	"github.com/labstack/echo/v4"

	"motionstock/internal/adapter/api/handler"
)

func SetupTemplateRouter(api *echo.Group) {
	templateHandler := handler.GetTemplateHandler()

	api.GET("/templates", templateHandler.ListTemplates)
	api.GET("/templates/:id", templateHandler.GetTemplate)
}
