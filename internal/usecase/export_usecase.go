package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"motionstock/internal/domain/entity"
	"motionstock/internal/domain/repository"
	"motionstock/internal/domain/service"
	"motionstock/pkg/errors"
	"motionstock/pkg/logger"
)

const (
	DefaultExportFormat     = "mp4"
	DefaultExportDurationMS = 5000
	DefaultExportWidth      = 800
	DefaultExportHeight     = 600
	DefaultExportQuality    = "high"

	exportNote = "Export descriptor only. Media rendering is not implemented."
)

var (
	formatPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)
	slugStrip     = regexp.MustCompile(`[^a-z0-9]+`)
)

type ExportUseCase struct {
	projectRepo  repository.ProjectRepository
	templateRepo repository.TemplateRepository
	blobs        service.BlobStore
	prefix       string
	now          func() time.Time
}

func NewExportUseCase(projectRepo repository.ProjectRepository, templateRepo repository.TemplateRepository, blobs service.BlobStore, prefix string) *ExportUseCase {
	return &ExportUseCase{
		projectRepo:  projectRepo,
		templateRepo: templateRepo,
		blobs:        blobs,
		prefix:       prefix,
		now:          time.Now,
	}
}

type ExportInput struct {
	ProjectID  string
	Format     string
	DurationMS int
	Width      int
	Height     int
	Quality    string
}

func (in ExportInput) settings() entity.ExportSettings {
	s := entity.ExportSettings{
		Format:     in.Format,
		DurationMS: in.DurationMS,
		Width:      in.Width,
		Height:     in.Height,
		Quality:    in.Quality,
	}
	if s.Format == "" {
		s.Format = DefaultExportFormat
	}
	if s.DurationMS <= 0 {
		s.DurationMS = DefaultExportDurationMS
	}
	if s.Width <= 0 {
		s.Width = DefaultExportWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultExportHeight
	}
	if s.Quality == "" {
		s.Quality = DefaultExportQuality
	}
	return s
}

// Export writes a JSON descriptor of the project, its template and the
// requested settings. Missing records surface as NotFound, everything else as
// ExportFailed.
func (uc *ExportUseCase) Export(ctx context.Context, input ExportInput) (*entity.ExportResult, error) {
	settings := input.settings()
	if !formatPattern.MatchString(settings.Format) {
		return nil, errors.Validation("Invalid export format")
	}

	project, err := uc.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, exportError(err)
	}
	template, err := uc.templateRepo.GetByID(ctx, project.TemplateID)
	if err != nil {
		return nil, exportError(err)
	}

	exportID := fmt.Sprintf("%s_%s.%s", slug(project.Name), strings.ReplaceAll(uuid.New().String(), "-", "")[:8], settings.Format)

	descriptor := entity.ExportDescriptor{
		ExportID:   exportID,
		Project:    project,
		Template:   template,
		Settings:   settings,
		Dimensions: fmt.Sprintf("%dx%d", settings.Width, settings.Height),
		Duration:   fmt.Sprintf("%.1fs", float64(settings.DurationMS)/1000),
		Status:     entity.ExportStatusCompleted,
		Note:       exportNote,
		CreatedAt:  uc.now().UTC(),
	}

	body, err := json.MarshalIndent(descriptor, "", "  ")
	if err != nil {
		return nil, errors.ExportFailed(err)
	}

	size, err := uc.blobs.Save(ctx, path.Join(uc.prefix, exportID), bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, errors.ExportFailed(err)
	}

	logger.Info("Exported project %s as %s", project.ID, exportID)

	return &entity.ExportResult{
		ExportID:    exportID,
		DownloadURL: "/api/exports/" + exportID,
		Status:      entity.ExportStatusCompleted,
		Format:      settings.Format,
		FileSize:    size,
	}, nil
}

// DownloadExport opens a stored descriptor. The caller closes the reader.
func (uc *ExportUseCase) DownloadExport(ctx context.Context, exportID string) (io.ReadCloser, int64, error) {
	if exportID == "" || strings.ContainsAny(exportID, `/\`) || strings.Contains(exportID, "..") {
		return nil, 0, errors.NotFound("Export file", nil)
	}

	rc, size, err := uc.blobs.Open(ctx, path.Join(uc.prefix, exportID))
	if err != nil {
		if stderrors.Is(err, service.ErrObjectNotFound) {
			return nil, 0, errors.NotFound("Export file", err)
		}
		return nil, 0, errors.StorageFailure("Failed to read export", err)
	}
	return rc, size, nil
}

func exportError(err error) error {
	if errors.Is(err, errors.CodeNotFound) {
		return err
	}
	return errors.ExportFailed(err)
}

func slug(name string) string {
	s := strings.Trim(slugStrip.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if s == "" {
		return "export"
	}
	return s
}
