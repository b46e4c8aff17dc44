package router

import (
	"github.com/labstack/echo/v4"

	"motionstock/internal/infrastructure/ratelimit"
)

type Options struct {
	// MaxUploadSize is an echo body limit such as "500M".
	MaxUploadSize string
	Limiter       *ratelimit.RateLimiter
}

func Setup(e *echo.Echo, opts Options) {
	api := e.Group("/api")

	SetupMetaRouter(api)
	SetupAssetRouter(api, opts)
	SetupTemplateRouter(api)
	SetupProjectRouter(api)
	SetupExportRouter(api, opts)
	SetupHealthRouter(e)
}
