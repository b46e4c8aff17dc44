package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"motionstock/internal/adapter/api"
	"motionstock/internal/adapter/api/handler"
	"motionstock/internal/adapter/api/router"
	"motionstock/internal/infrastructure/ratelimit"
	"motionstock/internal/infrastructure/seed"
	"motionstock/internal/usecase"
	"motionstock/pkg/config"
	"motionstock/pkg/logger"
	"motionstock/pkg/response"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  app.handleServe,
	}
	cmd.Flags().String("port", "", "listen port (overrides SERVER_PORT)")
	return cmd
}

func (a *App) handleServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := a.cfg

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.ServerPort = port
	}

	s, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	assetUseCase := usecase.NewAssetUseCase(s.assets, s.blobs, usecase.AssetUseCaseConfig{
		AssetPrefix:          cfg.AssetPrefix,
		StrictCategoryUpdate: cfg.StrictCategoryUpdate,
	})
	templateUseCase := usecase.NewTemplateUseCase(s.templates, seed.BuiltinTemplates)
	projectUseCase := usecase.NewProjectUseCase(s.projects, s.templates, cfg.StrictProjectConfig)
	exportUseCase := usecase.NewExportUseCase(s.projects, s.templates, s.blobs, cfg.ExportPrefix)

	if _, err := templateUseCase.SeedTemplates(ctx); err != nil {
		logger.Error("Failed to seed templates at startup: %v", err)
	}

	handler.Setup(assetUseCase, templateUseCase, projectUseCase, exportUseCase, s.healthChecks(cfg))

	limiter := ratelimit.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.StartCleanupRoutine(ctx, 30*time.Minute, time.Hour)

	e := newEcho(cfg)
	router.Setup(e, router.Options{
		MaxUploadSize: cfg.MaxUploadBytes(),
		Limiter:       limiter,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		errCh <- e.Start(":" + cfg.ServerPort)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))

	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if rerr := response.Error(c, err); rerr != nil {
			logger.Error("Failed to write error response: %v", rerr)
		}
	}

	return e
}
