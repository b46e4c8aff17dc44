package router

import (
	"github.com/labstack/echo/v4"

	"motionstock/internal/adapter/api/handler"
)

func SetupMetaRouter(api *echo.Group) {
	metaHandler := handler.GetMetaHandler()

	api.GET("", metaHandler.Root)
	api.GET("/", metaHandler.Root)
	api.GET("/categories", metaHandler.ListCategories)
	api.GET("/template-categories", metaHandler.ListTemplateCategories)
}
