package handler

import (
	"github.com/labstack/echo/v4"

	"motionstock/internal/domain/entity"
	"motionstock/internal/usecase"
	"motionstock/pkg/errors"
	"motionstock/pkg/response"
)

type ProjectHandler struct {
	projectUseCase *usecase.ProjectUseCase
}

func NewProjectHandler(projectUseCase *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
	}
}

type createProjectRequest struct {
	TemplateID string                 `json:"template_id" validate:"required"`
	Name       string                 `json:"name" validate:"required,max=200"`
	Config     map[string]interface{} `json:"config"`
}

type updateProjectRequest struct {
	Name   *string                 `json:"name" validate:"omitempty,max=200"`
	Config *map[string]interface{} `json:"config"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.CreateProject(c.Request().Context(), usecase.CreateProjectInput{
		TemplateID: req.TemplateID,
		Name:       req.Name,
		Config:     req.Config,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectUseCase.ListProjects(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, projects)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	project, err := h.projectUseCase.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.UpdateProject(c.Request().Context(), c.Param("id"), entity.ProjectPatch{
		Name:   req.Name,
		Config: req.Config,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	if err := h.projectUseCase.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Project deleted successfully")
}
