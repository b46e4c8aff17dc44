package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"strings"

	"motionstock/internal/domain/entity"
	"motionstock/internal/domain/repository"
	"motionstock/pkg/errors"
	"motionstock/pkg/utils"
)

const assetColumns = `id, title, description, category, tags, filename, storage_path,
	file_size, duration, thumbnail, download_count, created_at, format`

type sqliteAssetRepository struct {
	db *sql.DB
}

func NewSQLiteAssetRepository(db *sql.DB) repository.AssetRepository {
	return &sqliteAssetRepository{db: db}
}

func (r *sqliteAssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	tags, err := encodeJSON(nonNilTags(asset.Tags))
	if err != nil {
		return errors.Internal("Failed to encode tags", err)
	}

	var duration sql.NullFloat64
	if asset.Duration != nil {
		duration = sql.NullFloat64{Float64: *asset.Duration, Valid: true}
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO motion_graphics (`+assetColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		asset.ID, asset.Title, asset.Description, asset.Category, tags, asset.Filename,
		asset.StoragePath, asset.FileSize, duration, asset.Thumbnail, asset.DownloadCount,
		formatTime(asset.CreatedAt), asset.Format,
	)
	if err != nil {
		return errors.Internal("Failed to create motion graphic", err)
	}
	return nil
}

func (r *sqliteAssetRepository) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+assetColumns+` FROM motion_graphics WHERE id = ?`, id)
	asset, err := scanAsset(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("Motion graphic", err)
		}
		return nil, errors.Internal("Failed to get motion graphic", err)
	}
	return asset, nil
}

func (r *sqliteAssetRepository) List(ctx context.Context, filter entity.AssetFilter) ([]*entity.Asset, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}

	query := `SELECT ` + assetColumns + ` FROM motion_graphics`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY rowid`

	page := utils.Normalize(filter.Limit, filter.Offset)
	if filter.Search == "" {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, page.Limit, page.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Internal("Failed to query motion graphics", err)
	}
	defer rows.Close()

	assets := []*entity.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, errors.Internal("Failed to parse motion graphic data", err)
		}
		if asset.Matches(filter.Search) {
			assets = append(assets, asset)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Internal("Failed to iterate motion graphics", err)
	}

	if filter.Search != "" {
		start, end := page.Window(len(assets))
		assets = assets[start:end]
	}
	return assets, nil
}

func (r *sqliteAssetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	tags, err := encodeJSON(nonNilTags(asset.Tags))
	if err != nil {
		return errors.Internal("Failed to encode tags", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE motion_graphics SET title = ?, description = ?, category = ?, tags = ? WHERE id = ?`,
		asset.Title, asset.Description, asset.Category, tags, asset.ID,
	)
	return affectedOne(result, err, "Motion graphic", "Failed to update motion graphic")
}

func (r *sqliteAssetRepository) IncrementDownloads(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE motion_graphics SET download_count = download_count + 1 WHERE id = ?`, id)
	return affectedOne(result, err, "Motion graphic", "Failed to increment download count")
}

func (r *sqliteAssetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM motion_graphics WHERE id = ?`, id)
	return affectedOne(result, err, "Motion graphic", "Failed to delete motion graphic")
}

func (r *sqliteAssetRepository) Stats(ctx context.Context) (*entity.AssetStats, error) {
	stats := &entity.AssetStats{CategoryDistribution: []entity.CategoryCount{}}

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(download_count), 0) FROM motion_graphics`,
	).Scan(&stats.TotalAssets, &stats.TotalDownloads)
	if err != nil {
		return nil, errors.Internal("Failed to aggregate motion graphics", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT category, COUNT(*) AS n FROM motion_graphics
		GROUP BY category ORDER BY n DESC, category ASC`)
	if err != nil {
		return nil, errors.Internal("Failed to aggregate categories", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cc entity.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, errors.Internal("Failed to parse category counts", err)
		}
		stats.CategoryDistribution = append(stats.CategoryDistribution, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Internal("Failed to iterate category counts", err)
	}

	return stats, nil
}

func scanAsset(s scanner) (*entity.Asset, error) {
	var (
		asset     entity.Asset
		tags      string
		duration  sql.NullFloat64
		createdAt string
	)
	err := s.Scan(&asset.ID, &asset.Title, &asset.Description, &asset.Category, &tags,
		&asset.Filename, &asset.StoragePath, &asset.FileSize, &duration, &asset.Thumbnail,
		&asset.DownloadCount, &createdAt, &asset.Format)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &asset.Tags); err != nil {
		return nil, err
	}
	if asset.Tags == nil {
		asset.Tags = []string{}
	}
	if duration.Valid {
		d := duration.Float64
		asset.Duration = &d
	}
	if asset.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}

	return &asset, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// affectedOne maps an exec result for a single-row statement onto the error
// taxonomy: zero rows means the record does not exist.
func affectedOne(result sql.Result, err error, resource, failure string) error {
	if err != nil {
		return errors.Internal(failure, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return errors.Internal(failure, err)
	}
	if n == 0 {
		return errors.NotFound(resource, nil)
	}
	return nil
}
