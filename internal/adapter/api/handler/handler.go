package handler

import (
	"motionstock/internal/usecase"
)

var (
	assetHandler    *AssetHandler
	templateHandler *TemplateHandler
	projectHandler  *ProjectHandler
	exportHandler   *ExportHandler
	metaHandler     *MetaHandler
	healthHandler   *HealthHandler
)

func Setup(
	assetUseCase *usecase.AssetUseCase,
	templateUseCase *usecase.TemplateUseCase,
	projectUseCase *usecase.ProjectUseCase,
	exportUseCase *usecase.ExportUseCase,
	healthChecks map[string]HealthCheck,
) {
	assetHandler = NewAssetHandler(assetUseCase)
	templateHandler = NewTemplateHandler(templateUseCase)
	projectHandler = NewProjectHandler(projectUseCase)
	exportHandler = NewExportHandler(exportUseCase)
	metaHandler = NewMetaHandler()
	healthHandler = NewHealthHandler(healthChecks)
}

func GetAssetHandler() *AssetHandler {
	return assetHandler
}

func GetTemplateHandler() *TemplateHandler {
	return templateHandler
}

func GetProjectHandler() *ProjectHandler {
	return projectHandler
}

func GetExportHandler() *ExportHandler {
	return exportHandler
}

func GetMetaHandler() *MetaHandler {
	return metaHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
