package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"motionstock/internal/domain/entity"
	"motionstock/internal/domain/repository"
	"motionstock/internal/domain/service"
	"motionstock/internal/infrastructure/thumbnail"
	"motionstock/pkg/errors"
	"motionstock/pkg/logger"
)

type AssetUseCaseConfig struct {
	AssetPrefix          string
	StrictCategoryUpdate bool
}

type AssetUseCase struct {
	assetRepo repository.AssetRepository
	blobs     service.BlobStore
	config    AssetUseCaseConfig
	now       func() time.Time
}

func NewAssetUseCase(assetRepo repository.AssetRepository, blobs service.BlobStore, config AssetUseCaseConfig) *AssetUseCase {
	return &AssetUseCase{
		assetRepo: assetRepo,
		blobs:     blobs,
		config:    config,
		now:       time.Now,
	}
}

type UploadAssetInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Format      string
	Filename    string
	ContentType string
}

func (uc *AssetUseCase) UploadAsset(ctx context.Context, input UploadAssetInput, file io.Reader) (*entity.Asset, error) {
	if !entity.IsAssetCategory(input.Category) {
		return nil, errors.Validation(fmt.Sprintf("Invalid category. Must be one of: %s",
			strings.Join(entity.AssetCategories, ", ")))
	}
	if !entity.IsAllowedUploadType(input.ContentType) {
		return nil, errors.Validation("Invalid file type. Only MP4, MOV, AVI, and ZIP files are allowed.")
	}

	ext := filepath.Ext(input.Filename)
	key := path.Join(uc.config.AssetPrefix, uuid.New().String()+ext)

	size, err := uc.blobs.Save(ctx, key, file, input.ContentType)
	if err != nil {
		return nil, errors.StorageFailure("Failed to save file", err)
	}

	format := input.Format
	if format == "" {
		format = strings.ToUpper(strings.TrimPrefix(ext, "."))
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	asset := &entity.Asset{
		ID:            uuid.New().String(),
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Tags:          tags,
		Filename:      input.Filename,
		StoragePath:   key,
		FileSize:      size,
		Thumbnail:     thumbnail.Generate(input.Category),
		DownloadCount: 0,
		CreatedAt:     uc.now().UTC(),
		Format:        format,
	}

	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		if delErr := uc.blobs.Delete(ctx, key); delErr != nil {
			logger.Error("%s", logger.WithContext(asset.ID, "Failed to remove orphaned upload %s: %v", key, delErr))
		}
		return nil, err
	}

	logger.Info("Uploaded motion graphic %s (%s, %d bytes)", asset.ID, asset.Category, asset.FileSize)
	return asset, nil
}

// ListAssets ignores a category outside the fixed set rather than failing.
func (uc *AssetUseCase) ListAssets(ctx context.Context, filter entity.AssetFilter) ([]*entity.Asset, error) {
	if !entity.IsAssetCategory(filter.Category) {
		filter.Category = ""
	}
	return uc.assetRepo.List(ctx, filter)
}

func (uc *AssetUseCase) GetAsset(ctx context.Context, id string) (*entity.Asset, error) {
	return uc.assetRepo.GetByID(ctx, id)
}

// DownloadAsset opens the stored file and counts the download. The caller
// closes the returned reader.
func (uc *AssetUseCase) DownloadAsset(ctx context.Context, id string) (io.ReadCloser, *entity.Asset, error) {
	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, _, err := uc.blobs.Open(ctx, asset.StoragePath)
	if err != nil {
		if stderrors.Is(err, service.ErrObjectNotFound) {
			return nil, nil, errors.New(errors.CodeNotFound, "File not found on server", http.StatusNotFound, err)
		}
		return nil, nil, errors.StorageFailure("Failed to read file", err)
	}

	if err := uc.assetRepo.IncrementDownloads(ctx, id); err != nil {
		rc.Close()
		return nil, nil, err
	}
	asset.DownloadCount++

	return rc, asset, nil
}

func (uc *AssetUseCase) UpdateAsset(ctx context.Context, id string, patch entity.AssetPatch) (*entity.Asset, error) {
	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.config.StrictCategoryUpdate && patch.Category != nil && !entity.IsAssetCategory(*patch.Category) {
		return nil, errors.Validation(fmt.Sprintf("Invalid category. Must be one of: %s",
			strings.Join(entity.AssetCategories, ", ")))
	}

	if patch.IsEmpty() {
		return asset, nil
	}

	patch.Apply(asset)
	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}

	return uc.assetRepo.GetByID(ctx, id)
}

// DeleteAsset removes the stored file when present, then the record.
func (uc *AssetUseCase) DeleteAsset(ctx context.Context, id string) error {
	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.blobs.Delete(ctx, asset.StoragePath); err != nil && !stderrors.Is(err, service.ErrObjectNotFound) {
		return errors.StorageFailure("Failed to delete file", err)
	}

	if err := uc.assetRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Deleted motion graphic %s", id)
	return nil
}

func (uc *AssetUseCase) GetStats(ctx context.Context) (*entity.AssetStats, error) {
	return uc.assetRepo.Stats(ctx)
}
