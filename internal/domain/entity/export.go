package entity

import "time"

const ExportStatusCompleted = "completed"

type ExportSettings struct {
	Format     string `json:"format"`
	DurationMS int    `json:"duration"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Quality    string `json:"quality"`
}

// ExportResult describes a written export descriptor. No media is rendered.
type ExportResult struct {
	ExportID    string `json:"export_id"`
	DownloadURL string `json:"download_url"`
	Status      string `json:"status"`
	Format      string `json:"format"`
	FileSize    int64  `json:"file_size"`
}

// ExportDescriptor is the JSON body stored for every export.
type ExportDescriptor struct {
	ExportID   string         `json:"export_id"`
	Project    *Project       `json:"project"`
	Template   *Template      `json:"template"`
	Settings   ExportSettings `json:"export_settings"`
	Dimensions string         `json:"dimensions"`
	Duration   string         `json:"duration"`
	Status     string         `json:"status"`
	Note       string         `json:"note"`
	CreatedAt  time.Time      `json:"timestamp"`
}
