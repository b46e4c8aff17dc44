package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"motionstock/internal/domain/entity"
	"motionstock/internal/domain/repository"
	"motionstock/pkg/errors"
)

type ProjectUseCase struct {
	projectRepo  repository.ProjectRepository
	templateRepo repository.TemplateRepository
	strictConfig bool
	now          func() time.Time
}

// NewProjectUseCase builds the project service. With strictConfig set, config
// keys must name one of the template's editable params.
func NewProjectUseCase(projectRepo repository.ProjectRepository, templateRepo repository.TemplateRepository, strictConfig bool) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo:  projectRepo,
		templateRepo: templateRepo,
		strictConfig: strictConfig,
		now:          time.Now,
	}
}

type CreateProjectInput struct {
	TemplateID string
	Name       string
	Config     map[string]interface{}
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, input CreateProjectInput) (*entity.Project, error) {
	template, err := uc.templateRepo.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}

	config := input.Config
	if config == nil {
		config = map[string]interface{}{}
	}
	if err := uc.checkConfig(template, config); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	project := &entity.Project{
		ID:         uuid.New().String(),
		TemplateID: template.ID,
		Name:       input.Name,
		Config:     config,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (uc *ProjectUseCase) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	return uc.projectRepo.List(ctx)
}

func (uc *ProjectUseCase) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	return uc.projectRepo.GetByID(ctx, id)
}

// UpdateProject applies the set fields and always refreshes UpdatedAt, even
// for an empty patch. The template reference is not re-checked.
func (uc *ProjectUseCase) UpdateProject(ctx context.Context, id string, patch entity.ProjectPatch) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.strictConfig && patch.Config != nil {
		template, err := uc.templateRepo.GetByID(ctx, project.TemplateID)
		switch {
		case err == nil:
			if err := uc.checkConfig(template, *patch.Config); err != nil {
				return nil, err
			}
		case !errors.Is(err, errors.CodeNotFound):
			return nil, err
		}
	}

	patch.Apply(project)
	if project.Config == nil {
		project.Config = map[string]interface{}{}
	}
	project.UpdatedAt = uc.now().UTC()

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (uc *ProjectUseCase) DeleteProject(ctx context.Context, id string) error {
	return uc.projectRepo.Delete(ctx, id)
}

func (uc *ProjectUseCase) checkConfig(template *entity.Template, config map[string]interface{}) error {
	if !uc.strictConfig {
		return nil
	}

	var unknown []string
	for key := range config {
		if !template.HasParam(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return errors.Validation(fmt.Sprintf("Unknown config parameters for template %s: %s",
		template.Kind, strings.Join(unknown, ", ")))
}
