package router

import (
	"github.com/labstack/echo/v4"

	"motionstock/internal/adapter/api/handler"
	"motionstock/internal/adapter/api/middleware"
)

func SetupExportRouter(api *echo.Group, opts Options) {
	exportHandler := handler.GetExportHandler()

	var limited []echo.MiddlewareFunc
	if opts.Limiter != nil {
		limited = append(limited, middleware.RateLimit(opts.Limiter, "export"))
	}

	api.POST("/export", exportHandler.ExportProject, limited...)
	api.GET("/exports/:export_id", exportHandler.DownloadExport)
}
