package usecase

import (
	"context"
	"time"

	"github.com/spf13/afero"

	"motionstock/internal/adapter/repository"
	"motionstock/internal/domain/entity"
	domainrepo "motionstock/internal/domain/repository"
	"motionstock/internal/infrastructure/seed"
	"motionstock/internal/infrastructure/storage"
	"motionstock/pkg/errors"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fixture struct {
	fs        afero.Fs
	blobs     *storage.LocalStore
	assets    domainrepo.AssetRepository
	templates domainrepo.TemplateRepository
	projects  domainrepo.ProjectRepository
}

func newFixture() *fixture {
	fs := afero.NewMemMapFs()
	return &fixture{
		fs:        fs,
		blobs:     storage.NewLocalStoreWithFs(fs),
		assets:    repository.NewMemoryAssetRepository(),
		templates: repository.NewMemoryTemplateRepository(),
		projects:  repository.NewMemoryProjectRepository(),
	}
}

func (f *fixture) assetUseCase(strict bool) *AssetUseCase {
	uc := NewAssetUseCase(f.assets, f.blobs, AssetUseCaseConfig{
		AssetPrefix:          "motion_graphics",
		StrictCategoryUpdate: strict,
	})
	uc.now = clock
	return uc
}

func (f *fixture) templateUseCase() *TemplateUseCase {
	uc := NewTemplateUseCase(f.templates, seed.BuiltinTemplates)
	uc.now = clock
	return uc
}

func (f *fixture) projectUseCase(strict bool) *ProjectUseCase {
	uc := NewProjectUseCase(f.projects, f.templates, strict)
	uc.now = clock
	return uc
}

func (f *fixture) exportUseCase() *ExportUseCase {
	uc := NewExportUseCase(f.projects, f.templates, f.blobs, "exports")
	uc.now = clock
	return uc
}

func readOnlyBlobs(f *fixture) *storage.LocalStore {
	return storage.NewLocalStoreWithFs(afero.NewReadOnlyFs(f.fs))
}

// failingAssetRepository rejects every insert.
type failingAssetRepository struct {
	domainrepo.AssetRepository
}

func (failingAssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	return errors.Internal("Failed to create motion graphic", nil)
}
