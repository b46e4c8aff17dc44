package repository

import (
	"context"

	"motionstock/internal/domain/entity"
)

// AssetRepository persists asset metadata records. List and All return assets
// in creation order.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	List(ctx context.Context, filter entity.AssetFilter) ([]*entity.Asset, error)
	Update(ctx context.Context, asset *entity.Asset) error
	IncrementDownloads(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*entity.AssetStats, error)
}
