package handler

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"

	"motionstock/internal/domain/entity"
	"motionstock/internal/usecase"
	"motionstock/pkg/errors"
	"motionstock/pkg/logger"
	"motionstock/pkg/response"
	"motionstock/pkg/utils"
)

type AssetHandler struct {
	assetUseCase *usecase.AssetUseCase
}

func NewAssetHandler(assetUseCase *usecase.AssetUseCase) *AssetHandler {
	return &AssetHandler{
		assetUseCase: assetUseCase,
	}
}

type uploadAssetRequest struct {
	Title       string `form:"title" validate:"required,max=200"`
	Description string `form:"description" validate:"required"`
	Category    string `form:"category" validate:"required"`
	Tags        string `form:"tags"`
	Format      string `form:"format" validate:"required,max=20"`
}

type updateAssetRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=200"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
}

// parseTags decodes the JSON array sent in the tags form field. Anything that
// is not a JSON string array yields no tags.
func parseTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}

func (h *AssetHandler) UploadMotionGraphic(c echo.Context) error {
	var req uploadAssetRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid form data", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		logger.Debug("Error getting file from form: %v", err)
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.StorageFailure("Unable to read uploaded file", err))
	}
	defer src.Close()

	asset, err := h.assetUseCase.UploadAsset(c.Request().Context(), usecase.UploadAssetInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        parseTags(req.Tags),
		Format:      req.Format,
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
	}, src)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, asset)
}

func (h *AssetHandler) ListMotionGraphics(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	assets, err := h.assetUseCase.ListAssets(c.Request().Context(), entity.AssetFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Limit:    pagination.Limit,
		Offset:   pagination.Offset,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, assets)
}

func (h *AssetHandler) GetMotionGraphic(c echo.Context) error {
	asset, err := h.assetUseCase.GetAsset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, asset)
}

func (h *AssetHandler) DownloadMotionGraphic(c echo.Context) error {
	rc, asset, err := h.assetUseCase.DownloadAsset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	defer rc.Close()

	setAttachment(c, asset.Filename)
	return c.Stream(http.StatusOK, echo.MIMEOctetStream, rc)
}

func (h *AssetHandler) UpdateMotionGraphic(c echo.Context) error {
	var req updateAssetRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	asset, err := h.assetUseCase.UpdateAsset(c.Request().Context(), c.Param("id"), entity.AssetPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, asset)
}

func (h *AssetHandler) DeleteMotionGraphic(c echo.Context) error {
	if err := h.assetUseCase.DeleteAsset(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Motion graphic deleted successfully")
}

func (h *AssetHandler) GetStats(c echo.Context) error {
	stats, err := h.assetUseCase.GetStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func setAttachment(c echo.Context, filename string) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
}
