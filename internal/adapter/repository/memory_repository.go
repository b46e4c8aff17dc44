package repository

import (
	"context"
	"sync"

	"motionstock/internal/domain/entity"
	"motionstock/internal/domain/repository"
	"motionstock/pkg/errors"
	"motionstock/pkg/utils"
)

// memoryAssetRepository keeps assets in insertion order behind a mutex.
// Values are copied on the way in and out so callers never share state.
type memoryAssetRepository struct {
	mu     sync.RWMutex
	order  []string
	assets map[string]*entity.Asset
}

func NewMemoryAssetRepository() repository.AssetRepository {
	return &memoryAssetRepository{
		assets: make(map[string]*entity.Asset),
	}
}

func cloneAsset(a *entity.Asset) *entity.Asset {
	c := *a
	c.Tags = append([]string{}, a.Tags...)
	if a.Duration != nil {
		d := *a.Duration
		c.Duration = &d
	}
	return &c
}

func (r *memoryAssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assets[asset.ID]; exists {
		return errors.Internal("Failed to create motion graphic", nil)
	}
	r.assets[asset.ID] = cloneAsset(asset)
	r.order = append(r.order, asset.ID)
	return nil
}

func (r *memoryAssetRepository) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, ok := r.assets[id]
	if !ok {
		return nil, errors.NotFound("Motion graphic", nil)
	}
	return cloneAsset(asset), nil
}

func (r *memoryAssetRepository) List(ctx context.Context, filter entity.AssetFilter) ([]*entity.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []*entity.Asset{}
	for _, id := range r.order {
		asset := r.assets[id]
		if filter.Category != "" && asset.Category != filter.Category {
			continue
		}
		if !asset.Matches(filter.Search) {
			continue
		}
		matched = append(matched, asset)
	}

	start, end := utils.Normalize(filter.Limit, filter.Offset).Window(len(matched))
	page := make([]*entity.Asset, 0, end-start)
	for _, asset := range matched[start:end] {
		page = append(page, cloneAsset(asset))
	}
	return page, nil
}

func (r *memoryAssetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.assets[asset.ID]
	if !ok {
		return errors.NotFound("Motion graphic", nil)
	}
	existing.Title = asset.Title
	existing.Description = asset.Description
	existing.Category = asset.Category
	existing.Tags = append([]string{}, asset.Tags...)
	return nil
}

func (r *memoryAssetRepository) IncrementDownloads(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, ok := r.assets[id]
	if !ok {
		return errors.NotFound("Motion graphic", nil)
	}
	asset.DownloadCount++
	return nil
}

func (r *memoryAssetRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[id]; !ok {
		return errors.NotFound("Motion graphic", nil)
	}
	delete(r.assets, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryAssetRepository) Stats(ctx context.Context) (*entity.AssetStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &entity.AssetStats{}
	byCategory := map[string]int64{}
	for _, asset := range r.assets {
		stats.TotalAssets++
		stats.TotalDownloads += asset.DownloadCount
		byCategory[asset.Category]++
	}
	stats.CategoryDistribution = entity.Tally(byCategory)
	return stats, nil
}

type memoryTemplateRepository struct {
	mu        sync.RWMutex
	order     []string
	templates map[string]*entity.Template
}

func NewMemoryTemplateRepository() repository.TemplateRepository {
	return &memoryTemplateRepository{
		templates: make(map[string]*entity.Template),
	}
}

func (r *memoryTemplateRepository) Upsert(ctx context.Context, template *entity.Template) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[template.ID]; exists {
		return false, nil
	}
	t := *template
	r.templates[t.ID] = &t
	r.order = append(r.order, t.ID)
	return true, nil
}

func (r *memoryTemplateRepository) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	template, ok := r.templates[id]
	if !ok {
		return nil, errors.NotFound("Template", nil)
	}
	t := *template
	return &t, nil
}

func (r *memoryTemplateRepository) List(ctx context.Context) ([]*entity.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := make([]*entity.Template, 0, len(r.order))
	for _, id := range r.order {
		t := *r.templates[id]
		templates = append(templates, &t)
	}
	return templates, nil
}

func (r *memoryTemplateRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.templates)), nil
}

type memoryProjectRepository struct {
	mu       sync.RWMutex
	order    []string
	projects map[string]*entity.Project
}

func NewMemoryProjectRepository() repository.ProjectRepository {
	return &memoryProjectRepository{
		projects: make(map[string]*entity.Project),
	}
}

func cloneProject(p *entity.Project) *entity.Project {
	c := *p
	if p.Config != nil {
		c.Config = make(map[string]interface{}, len(p.Config))
		for k, v := range p.Config {
			c.Config[k] = v
		}
	}
	return &c
}

func (r *memoryProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.projects[project.ID]; exists {
		return errors.Internal("Failed to create project", nil)
	}
	r.projects[project.ID] = cloneProject(project)
	r.order = append(r.order, project.ID)
	return nil
}

func (r *memoryProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, errors.NotFound("Project", nil)
	}
	return cloneProject(project), nil
}

func (r *memoryProjectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]*entity.Project, 0, len(r.order))
	for _, id := range r.order {
		projects = append(projects, cloneProject(r.projects[id]))
	}
	return projects, nil
}

func (r *memoryProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.projects[project.ID]
	if !ok {
		return errors.NotFound("Project", nil)
	}
	updated := cloneProject(project)
	updated.CreatedAt = existing.CreatedAt
	updated.TemplateID = existing.TemplateID
	r.projects[project.ID] = updated
	return nil
}

func (r *memoryProjectRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return errors.NotFound("Project", nil)
	}
	delete(r.projects, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
