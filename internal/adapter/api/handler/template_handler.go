package handler

import (
	"github.com/labstack/echo/v4"

	"motionstock/internal/usecase"
	"motionstock/pkg/response"
)

type TemplateHandler struct {
	templateUseCase *usecase.TemplateUseCase
}

func NewTemplateHandler(templateUseCase *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{
		templateUseCase: templateUseCase,
	}
}

func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	templates, err := h.templateUseCase.ListTemplates(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, templates)
}

func (h *TemplateHandler) GetTemplate(c echo.Context) error {
	template, err := h.templateUseCase.GetTemplate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, template)
}
