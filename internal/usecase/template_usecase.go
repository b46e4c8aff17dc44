package usecase

import (
	"context"
	"time"

	"motionstock/internal/domain/entity"
	"motionstock/internal/domain/repository"
	"motionstock/pkg/errors"
	"motionstock/pkg/logger"
)

// TemplateCatalogue returns fresh copies of the built-in templates.
type TemplateCatalogue func() ([]*entity.Template, error)

type TemplateUseCase struct {
	templateRepo repository.TemplateRepository
	catalogue    TemplateCatalogue
	now          func() time.Time
}

func NewTemplateUseCase(templateRepo repository.TemplateRepository, catalogue TemplateCatalogue) *TemplateUseCase {
	return &TemplateUseCase{
		templateRepo: templateRepo,
		catalogue:    catalogue,
		now:          time.Now,
	}
}

// SeedTemplates upserts every built-in template and reports how many were
// newly written. Running it again writes nothing.
func (uc *TemplateUseCase) SeedTemplates(ctx context.Context) (int, error) {
	templates, err := uc.catalogue()
	if err != nil {
		return 0, errors.Internal("Failed to load template catalogue", err)
	}

	// Stagger timestamps so creation order follows the catalogue order.
	base := uc.now().UTC()
	created := 0
	for i, t := range templates {
		t.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		ok, err := uc.templateRepo.Upsert(ctx, t)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		logger.Info("Seeded %d built-in templates", created)
	}
	return created, nil
}

func (uc *TemplateUseCase) ListTemplates(ctx context.Context, category string) ([]*entity.Template, error) {
	count, err := uc.templateRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if _, err := uc.SeedTemplates(ctx); err != nil {
			return nil, err
		}
	}

	templates, err := uc.templateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return templates, nil
	}

	filtered := make([]*entity.Template, 0, len(templates))
	for _, t := range templates {
		if t.Category == category {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (uc *TemplateUseCase) GetTemplate(ctx context.Context, id string) (*entity.Template, error) {
	return uc.templateRepo.GetByID(ctx, id)
}
