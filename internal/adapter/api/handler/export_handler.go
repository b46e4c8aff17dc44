package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"motionstock/internal/usecase"
	"motionstock/pkg/errors"
	"motionstock/pkg/response"
)

type ExportHandler struct {
	exportUseCase *usecase.ExportUseCase
}

func NewExportHandler(exportUseCase *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{
		exportUseCase: exportUseCase,
	}
}

type exportRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Format    string `json:"format" validate:"omitempty,alphanum,max=10"`
	Duration  int    `json:"duration" validate:"omitempty,min=1,max=600000"`
	Width     int    `json:"width" validate:"omitempty,min=1,max=7680"`
	Height    int    `json:"height" validate:"omitempty,min=1,max=4320"`
	Quality   string `json:"quality" validate:"omitempty,max=20"`
}

func (h *ExportHandler) ExportProject(c echo.Context) error {
	var req exportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.exportUseCase.Export(c.Request().Context(), usecase.ExportInput{
		ProjectID:  req.ProjectID,
		Format:     req.Format,
		DurationMS: req.Duration,
		Width:      req.Width,
		Height:     req.Height,
		Quality:    req.Quality,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ExportHandler) DownloadExport(c echo.Context) error {
	exportID := c.Param("export_id")

	rc, _, err := h.exportUseCase.DownloadExport(c.Request().Context(), exportID)
	if err != nil {
		return response.Error(c, err)
	}
	defer rc.Close()

	setAttachment(c, exportID)
	return c.Stream(http.StatusOK, echo.MIMEOctetStream, rc)
}
