package usecase

import (
	"context"
	"encoding/json"
	"io"
	"regexp"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionstock/internal/domain/entity"
	"motionstock/internal/infrastructure/seed"
	"motionstock/pkg/errors"
)

func createProject(t *testing.T, f *fixture, name, kind string) *entity.Project {
	t.Helper()
	project, err := f.projectUseCase(false).CreateProject(context.Background(), CreateProjectInput{
		TemplateID: seed.TemplateID(kind),
		Name:       name,
		Config:     map[string]interface{}{"text": "Launch day"},
	})
	require.NoError(t, err)
	return project
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("writes a descriptor with defaults", func(t *testing.T) {
		f := seededFixture(t)
		project := createProject(t, f, "Launch Teaser!", entity.KindText)
		uc := f.exportUseCase()

		result, err := uc.Export(ctx, ExportInput{ProjectID: project.ID})
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^launch_teaser_[0-9a-f]{8}\.mp4$`), result.ExportID)
		assert.Equal(t, "/api/exports/"+result.ExportID, result.DownloadURL)
		assert.Equal(t, entity.ExportStatusCompleted, result.Status)
		assert.Equal(t, "mp4", result.Format)

		data, err := afero.ReadFile(f.fs, "exports/"+result.ExportID)
		require.NoError(t, err)
		assert.Equal(t, int64(len(data)), result.FileSize)

		var descriptor entity.ExportDescriptor
		require.NoError(t, json.Unmarshal(data, &descriptor))
		assert.Equal(t, result.ExportID, descriptor.ExportID)
		assert.Equal(t, project.ID, descriptor.Project.ID)
		assert.Equal(t, entity.KindText, descriptor.Template.Kind)
		assert.Equal(t, "800x600", descriptor.Dimensions)
		assert.Equal(t, "5.0s", descriptor.Duration)
		assert.Equal(t, "high", descriptor.Settings.Quality)
		assert.Equal(t, 5000, descriptor.Settings.DurationMS)
		assert.True(t, fixedNow.Equal(descriptor.CreatedAt))
	})

	t.Run("honours requested settings", func(t *testing.T) {
		f := seededFixture(t)
		project := createProject(t, f, "Promo", entity.KindCounter)

		result, err := f.exportUseCase().Export(ctx, ExportInput{
			ProjectID: project.ID, Format: "webm", DurationMS: 2500, Width: 1920, Height: 1080, Quality: "low",
		})
		require.NoError(t, err)
		assert.Regexp(t, `^promo_[0-9a-f]{8}\.webm$`, result.ExportID)

		rc, _, err := f.exportUseCase().DownloadExport(ctx, result.ExportID)
		require.NoError(t, err)
		defer rc.Close()

		var descriptor entity.ExportDescriptor
		require.NoError(t, json.NewDecoder(rc).Decode(&descriptor))
		assert.Equal(t, "1920x1080", descriptor.Dimensions)
		assert.Equal(t, "2.5s", descriptor.Duration)
	})

	t.Run("each export gets its own id", func(t *testing.T) {
		f := seededFixture(t)
		project := createProject(t, f, "Promo", entity.KindCounter)
		uc := f.exportUseCase()

		a, err := uc.Export(ctx, ExportInput{ProjectID: project.ID})
		require.NoError(t, err)
		b, err := uc.Export(ctx, ExportInput{ProjectID: project.ID})
		require.NoError(t, err)
		assert.NotEqual(t, a.ExportID, b.ExportID)
	})

	t.Run("missing project", func(t *testing.T) {
		f := seededFixture(t)
		_, err := f.exportUseCase().Export(ctx, ExportInput{ProjectID: "nope"})
		assert.True(t, errors.Is(err, errors.CodeNotFound))
	})

	t.Run("missing template", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.projects.Create(ctx, &entity.Project{
			ID: "p1", TemplateID: "gone", Name: "p1",
			Config: map[string]interface{}{}, CreatedAt: fixedNow, UpdatedAt: fixedNow,
		}))

		_, err := f.exportUseCase().Export(ctx, ExportInput{ProjectID: "p1"})
		assert.True(t, errors.Is(err, errors.CodeNotFound))
	})

	t.Run("rejects formats that are not a plain extension", func(t *testing.T) {
		f := seededFixture(t)
		project := createProject(t, f, "Promo", entity.KindCounter)

		_, err := f.exportUseCase().Export(ctx, ExportInput{ProjectID: project.ID, Format: "mp4/../../x"})
		assert.True(t, errors.Is(err, errors.CodeValidation))
	})

	t.Run("write failure is reported as export failure", func(t *testing.T) {
		f := seededFixture(t)
		project := createProject(t, f, "Promo", entity.KindCounter)
		uc := NewExportUseCase(f.projects, f.templates, readOnlyBlobs(f), "exports")
		_, err := uc.Export(ctx, ExportInput{ProjectID: project.ID})
		assert.True(t, errors.Is(err, errors.CodeExportFailed))
	})
}

func TestDownloadExport(t *testing.T) {
	ctx := context.Background()
	f := seededFixture(t)
	project := createProject(t, f, "Reel", entity.KindLoading)
	uc := f.exportUseCase()

	result, err := uc.Export(ctx, ExportInput{ProjectID: project.ID})
	require.NoError(t, err)

	rc, size, err := uc.DownloadExport(ctx, result.ExportID)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, result.FileSize, size)
	assert.Equal(t, int64(len(data)), size)

	for _, id := range []string{"missing.mp4", "", "../exports/" + result.ExportID, "a/b.mp4", `a\b.mp4`, ".."} {
		_, _, err := uc.DownloadExport(ctx, id)
		assert.True(t, errors.Is(err, errors.CodeNotFound), "id %q", id)
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "launch_teaser", slug("Launch Teaser!"))
	assert.Equal(t, "q3_2024_report", slug("  Q3 -- 2024 Report "))
	assert.Equal(t, "export", slug("***"))
}
