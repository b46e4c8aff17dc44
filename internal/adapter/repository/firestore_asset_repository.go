package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"motionstock/internal/domain/entity"
	"motionstock/internal/domain/repository"
	"motionstock/pkg/errors"
	"motionstock/pkg/utils"
)

const assetsCollection = "motion_graphics"

type firestoreAssetRepository struct {
	client *firestore.Client
}

func NewFirestoreAssetRepository(client *firestore.Client) repository.AssetRepository {
	return &firestoreAssetRepository{
		client: client,
	}
}

func (r *firestoreAssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	_, err := r.client.Collection(assetsCollection).Doc(asset.ID).Create(ctx, asset)
	if err != nil {
		return errors.Internal("Failed to create motion graphic", err)
	}
	return nil
}

func (r *firestoreAssetRepository) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	doc, err := r.client.Collection(assetsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Motion graphic", err)
		}
		return nil, errors.Internal("Failed to get motion graphic", err)
	}

	var asset entity.Asset
	if err := doc.DataTo(&asset); err != nil {
		return nil, errors.Internal("Failed to parse motion graphic data", err)
	}

	return &asset, nil
}

func (r *firestoreAssetRepository) List(ctx context.Context, filter entity.AssetFilter) ([]*entity.Asset, error) {
	query := r.client.Collection(assetsCollection).Query
	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	query = query.OrderBy("createdAt", firestore.Asc)

	page := utils.Normalize(filter.Limit, filter.Offset)

	// Firestore has no substring matching, so a search scans the (category
	// filtered) collection and pages in memory.
	if filter.Search != "" {
		all, err := r.collect(query.Documents(ctx))
		if err != nil {
			return nil, err
		}

		matched := make([]*entity.Asset, 0, len(all))
		for _, asset := range all {
			if asset.Matches(filter.Search) {
				matched = append(matched, asset)
			}
		}

		start, end := page.Window(len(matched))
		return matched[start:end], nil
	}

	query = query.Offset(page.Offset).Limit(page.Limit)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreAssetRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Asset, error) {
	defer iter.Stop()

	assets := []*entity.Asset{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate motion graphics", err)
		}

		var asset entity.Asset
		if err := doc.DataTo(&asset); err != nil {
			return nil, errors.Internal("Failed to parse motion graphic data", err)
		}
		assets = append(assets, &asset)
	}

	return assets, nil
}

// Update writes only the editable fields so a concurrent download increment is
// never overwritten.
func (r *firestoreAssetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	tags := asset.Tags
	if tags == nil {
		tags = []string{}
	}

	_, err := r.client.Collection(assetsCollection).Doc(asset.ID).Update(ctx, []firestore.Update{
		{Path: "title", Value: asset.Title},
		{Path: "description", Value: asset.Description},
		{Path: "category", Value: asset.Category},
		{Path: "tags", Value: tags},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Motion graphic", err)
		}
		return errors.Internal("Failed to update motion graphic", err)
	}

	return nil
}

func (r *firestoreAssetRepository) IncrementDownloads(ctx context.Context, id string) error {
	_, err := r.client.Collection(assetsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "downloadCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Motion graphic", err)
		}
		return errors.Internal("Failed to increment download count", err)
	}

	return nil
}

func (r *firestoreAssetRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(assetsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Motion graphic", err)
		}
		return errors.Internal("Failed to delete motion graphic", err)
	}

	return nil
}

func (r *firestoreAssetRepository) Stats(ctx context.Context) (*entity.AssetStats, error) {
	collection := r.client.Collection(assetsCollection)

	results, err := collection.NewAggregationQuery().
		WithCount("total").
		WithSum("downloadCount", "downloads").
		Get(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to aggregate motion graphics", err)
	}

	stats := &entity.AssetStats{
		TotalAssets:    aggregateInt(results["total"]),
		TotalDownloads: aggregateInt(results["downloads"]),
	}

	iter := collection.Select("category").Documents(ctx)
	defer iter.Stop()

	byCategory := map[string]int64{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate motion graphics", err)
		}
		category, _ := doc.Data()["category"].(string)
		byCategory[category]++
	}
	stats.CategoryDistribution = entity.Tally(byCategory)

	return stats, nil
}

func aggregateInt(v interface{}) int64 {
	value, ok := v.(*firestorepb.Value)
	if !ok || value == nil {
		return 0
	}
	switch value.GetValueType().(type) {
	case *firestorepb.Value_DoubleValue:
		return int64(value.GetDoubleValue())
	default:
		return value.GetIntegerValue()
	}
}
