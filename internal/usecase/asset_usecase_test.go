package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionstock/internal/domain/entity"
	"motionstock/internal/infrastructure/thumbnail"
	"motionstock/pkg/errors"
)

func upload(t *testing.T, uc *AssetUseCase, title, category string, tags ...string) *entity.Asset {
	t.Helper()
	asset, err := uc.UploadAsset(context.Background(), UploadAssetInput{
		Title:       title,
		Description: "A test clip",
		Category:    category,
		Tags:        tags,
		Format:      "MP4",
		Filename:    "clip.mp4",
		ContentType: "video/mp4",
	}, strings.NewReader("fake video bytes"))
	require.NoError(t, err)
	return asset
}

func blobCount(t *testing.T, fs afero.Fs, dir string) int {
	t.Helper()
	exists, err := afero.DirExists(fs, dir)
	require.NoError(t, err)
	if !exists {
		return 0
	}
	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	return len(entries)
}

func TestUploadAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("stores file and record", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)

		asset := upload(t, uc, "Test Motion Graphics", "transitions", "fast", "clean")

		assert.NotEmpty(t, asset.ID)
		assert.Equal(t, "clip.mp4", asset.Filename)
		assert.Equal(t, int64(len("fake video bytes")), asset.FileSize)
		assert.Equal(t, int64(0), asset.DownloadCount)
		assert.Equal(t, thumbnail.Generate("transitions"), asset.Thumbnail)
		assert.Equal(t, []string{"fast", "clean"}, asset.Tags)
		assert.Nil(t, asset.Duration)
		assert.True(t, strings.HasPrefix(asset.StoragePath, "motion_graphics/"))
		assert.True(t, strings.HasSuffix(asset.StoragePath, ".mp4"))
		assert.True(t, fixedNow.Equal(asset.CreatedAt))

		data, err := afero.ReadFile(f.fs, asset.StoragePath)
		require.NoError(t, err)
		assert.Equal(t, "fake video bytes", string(data))

		stored, err := uc.GetAsset(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, asset.StoragePath, stored.StoragePath)
	})

	t.Run("storage keys do not depend on the client filename", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)

		a := upload(t, uc, "one", "effects")
		b := upload(t, uc, "two", "effects")
		assert.NotEqual(t, a.StoragePath, b.StoragePath)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects unknown category without writing", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)

		_, err := uc.UploadAsset(ctx, UploadAssetInput{
			Title: "x", Category: "memes", Filename: "a.mp4", ContentType: "video/mp4",
		}, strings.NewReader("data"))
		assert.True(t, errors.Is(err, errors.CodeValidation))
		assert.Equal(t, 0, blobCount(t, f.fs, "motion_graphics"))

		list, err := uc.ListAssets(ctx, entity.AssetFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("rejects disallowed content type without writing", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)

		_, err := uc.UploadAsset(ctx, UploadAssetInput{
			Title: "x", Category: "logos", Filename: "a.png", ContentType: "image/png",
		}, strings.NewReader("data"))
		assert.True(t, errors.Is(err, errors.CodeValidation))
		assert.Equal(t, 0, blobCount(t, f.fs, "motion_graphics"))
	})

	t.Run("removes the file when the insert fails", func(t *testing.T) {
		f := newFixture()
		uc := NewAssetUseCase(failingAssetRepository{f.assets}, f.blobs, AssetUseCaseConfig{AssetPrefix: "motion_graphics"})

		_, err := uc.UploadAsset(ctx, UploadAssetInput{
			Title: "x", Category: "logos", Filename: "a.zip", ContentType: "application/zip",
		}, strings.NewReader("zip"))
		assert.True(t, errors.Is(err, errors.CodeInternal))
		assert.Equal(t, 0, blobCount(t, f.fs, "motion_graphics"))
	})

	t.Run("falls back to the extension for format", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)

		asset, err := uc.UploadAsset(ctx, UploadAssetInput{
			Title: "x", Category: "logos", Filename: "sting.mov", ContentType: "video/quicktime",
		}, strings.NewReader("mov"))
		require.NoError(t, err)
		assert.Equal(t, "MOV", asset.Format)
		assert.Equal(t, []string{}, asset.Tags)
	})
}

func TestListAssets(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.assetUseCase(false)

	upload(t, uc, "Test Motion Graphics", "transitions")
	upload(t, uc, "Lower third bar", "lower_thirds", "news")
	upload(t, uc, "Spark burst", "particles", "Motion")

	for _, search := range []string{"test", "TEST", "Motion"} {
		list, err := uc.ListAssets(ctx, entity.AssetFilter{Search: search})
		require.NoError(t, err)
		titles := make([]string, 0, len(list))
		for _, a := range list {
			titles = append(titles, a.Title)
		}
		assert.Contains(t, titles, "Test Motion Graphics", "search %q", search)
	}

	list, err := uc.ListAssets(ctx, entity.AssetFilter{Category: "lower_thirds"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "lower_thirds", list[0].Category)

	list, err = uc.ListAssets(ctx, entity.AssetFilter{Category: "not-a-category"})
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = uc.ListAssets(ctx, entity.AssetFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = uc.ListAssets(ctx, entity.AssetFilter{Limit: 5, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = uc.ListAssets(ctx, entity.AssetFilter{Offset: -3})
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, "Test Motion Graphics", list[0].Title)
}

func TestDownloadAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("streams the file and counts each download once", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)
		asset := upload(t, uc, "clip", "effects")

		for i := 1; i <= 3; i++ {
			rc, got, err := uc.DownloadAsset(ctx, asset.ID)
			require.NoError(t, err)
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			rc.Close()

			assert.Equal(t, "fake video bytes", string(data))
			assert.Equal(t, "clip.mp4", got.Filename)
			assert.Equal(t, int64(i), got.DownloadCount)
		}

		stored, err := uc.GetAsset(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stored.DownloadCount)
	})

	t.Run("missing record", func(t *testing.T) {
		f := newFixture()
		_, _, err := f.assetUseCase(false).DownloadAsset(ctx, "nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeNotFound))
		assert.Contains(t, err.Error(), "Motion graphic not found")
	})

	t.Run("missing file leaves the counter alone", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)
		asset := upload(t, uc, "clip", "effects")
		require.NoError(t, f.fs.Remove(asset.StoragePath))

		_, _, err := uc.DownloadAsset(ctx, asset.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeNotFound))
		assert.Contains(t, err.Error(), "File not found on server")

		stored, err := uc.GetAsset(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stored.DownloadCount)
	})
}

func TestUpdateAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("changes only the supplied fields", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)
		asset := upload(t, uc, "Old title", "shapes", "a")

		title := "New title"
		updated, err := uc.UpdateAsset(ctx, asset.ID, entity.AssetPatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, asset.Description, updated.Description)
		assert.Equal(t, "shapes", updated.Category)
		assert.Equal(t, []string{"a"}, updated.Tags)
		assert.Equal(t, asset.Thumbnail, updated.Thumbnail)
	})

	t.Run("empty patch returns the record unchanged", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)
		asset := upload(t, uc, "Same", "shapes")

		updated, err := uc.UpdateAsset(ctx, asset.ID, entity.AssetPatch{})
		require.NoError(t, err)
		assert.Equal(t, asset.Title, updated.Title)
	})

	t.Run("category is not re-validated by default", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)
		asset := upload(t, uc, "clip", "shapes")

		category := "anything"
		updated, err := uc.UpdateAsset(ctx, asset.ID, entity.AssetPatch{Category: &category})
		require.NoError(t, err)
		assert.Equal(t, "anything", updated.Category)
	})

	t.Run("strict mode rejects unknown category", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(true)
		asset := upload(t, uc, "clip", "shapes")

		category := "anything"
		_, err := uc.UpdateAsset(ctx, asset.ID, entity.AssetPatch{Category: &category})
		assert.True(t, errors.Is(err, errors.CodeValidation))

		stored, err := uc.GetAsset(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, "shapes", stored.Category)
	})

	t.Run("missing asset", func(t *testing.T) {
		f := newFixture()
		title := "x"
		_, err := f.assetUseCase(false).UpdateAsset(ctx, "nope", entity.AssetPatch{Title: &title})
		assert.True(t, errors.Is(err, errors.CodeNotFound))
	})
}

func TestDeleteAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("delete is terminal", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)
		asset := upload(t, uc, "clip", "logos")

		require.NoError(t, uc.DeleteAsset(ctx, asset.ID))

		exists, err := afero.Exists(f.fs, asset.StoragePath)
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = uc.GetAsset(ctx, asset.ID)
		assert.True(t, errors.Is(err, errors.CodeNotFound))
		_, _, err = uc.DownloadAsset(ctx, asset.ID)
		assert.True(t, errors.Is(err, errors.CodeNotFound))
		assert.True(t, errors.Is(uc.DeleteAsset(ctx, asset.ID), errors.CodeNotFound))
	})

	t.Run("missing file does not block record deletion", func(t *testing.T) {
		f := newFixture()
		uc := f.assetUseCase(false)
		asset := upload(t, uc, "clip", "logos")
		require.NoError(t, f.fs.Remove(asset.StoragePath))

		require.NoError(t, uc.DeleteAsset(ctx, asset.ID))
		_, err := uc.GetAsset(ctx, asset.ID)
		assert.True(t, errors.Is(err, errors.CodeNotFound))
	})
}

func TestAssetStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.assetUseCase(false)

	empty, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.TotalAssets)
	assert.Equal(t, int64(0), empty.TotalDownloads)

	a := upload(t, uc, "a", "overlays")
	upload(t, uc, "b", "overlays")
	upload(t, uc, "c", "backgrounds")

	for i := 0; i < 2; i++ {
		rc, _, err := uc.DownloadAsset(ctx, a.ID)
		require.NoError(t, err)
		rc.Close()
	}

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalAssets)
	assert.Equal(t, int64(2), stats.TotalDownloads)
	require.Len(t, stats.CategoryDistribution, 2)
	assert.Equal(t, entity.CategoryCount{Category: "overlays", Count: 2}, stats.CategoryDistribution[0])
	assert.Equal(t, entity.CategoryCount{Category: "backgrounds", Count: 1}, stats.CategoryDistribution[1])
}
