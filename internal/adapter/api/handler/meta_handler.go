package handler

import (
	"github.com/labstack/echo/v4"

	"motionstock/internal/domain/entity"
	"motionstock/pkg/response"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

func (h *MetaHandler) Root(c echo.Context) error {
	return response.Message(c, "Motion Graphics Stock API")
}

func (h *MetaHandler) ListCategories(c echo.Context) error {
	return response.Success(c, categoriesResponse{Categories: entity.AssetCategories})
}

func (h *MetaHandler) ListTemplateCategories(c echo.Context) error {
	return response.Success(c, categoriesResponse{Categories: entity.TemplateCategories})
}
