package router

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"motionstock/internal/adapter/api/handler"
	"motionstock/internal/adapter/api/middleware"
)

func SetupAssetRouter(api *echo.Group, opts Options) {
	assetHandler := handler.GetAssetHandler()

	api.GET("/motion-graphics", assetHandler.ListMotionGraphics)
	api.GET("/motion-graphics/:id", assetHandler.GetMotionGraphic)
	api.GET("/motion-graphics/:id/download", assetHandler.DownloadMotionGraphic)
	api.PUT("/motion-graphics/:id", assetHandler.UpdateMotionGraphic)
	api.DELETE("/motion-graphics/:id", assetHandler.DeleteMotionGraphic)
	api.GET("/stats", assetHandler.GetStats)

	// Uploads carry a body limit and the per-IP limiter
	var upload []echo.MiddlewareFunc
	if opts.MaxUploadSize != "" {
		upload = append(upload, echomiddleware.BodyLimit(opts.MaxUploadSize))
	}
	if opts.Limiter != nil {
		upload = append(upload, middleware.RateLimit(opts.Limiter, "upload"))
	}
	api.POST("/motion-graphics", assetHandler.UploadMotionGraphic, upload...)
}
