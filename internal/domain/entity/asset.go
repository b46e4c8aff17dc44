package entity

import (
	"strings"
	"time"
)

// Asset is an uploaded motion-graphics file plus its catalog metadata.
type Asset struct {
	ID            string    `json:"id" firestore:"id"`
	Title         string    `json:"title" firestore:"title"`
	Description   string    `json:"description" firestore:"description"`
	Category      string    `json:"category" firestore:"category"`
	Tags          []string  `json:"tags" firestore:"tags"`
	Filename      string    `json:"filename" firestore:"filename"`
	StoragePath   string    `json:"file_path" firestore:"storagePath"`
	FileSize      int64     `json:"file_size" firestore:"fileSize"`
	Duration      *float64  `json:"duration" firestore:"duration,omitempty"`
	Thumbnail     string    `json:"thumbnail_base64" firestore:"thumbnail"`
	DownloadCount int64     `json:"download_count" firestore:"downloadCount"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	Format        string    `json:"format" firestore:"format"`
}

// Matches reports whether the asset satisfies a case-insensitive substring
// search over title, description and tags. An empty search matches everything.
func (a *Asset) Matches(search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Description), needle) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// AssetPatch holds the fields a partial update may change. Nil means untouched.
type AssetPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
}

func (p AssetPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil && p.Tags == nil
}

// Apply copies the set fields onto the asset.
func (p AssetPatch) Apply(a *Asset) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Tags != nil {
		a.Tags = append([]string{}, (*p.Tags)...)
	}
}

type AssetFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

type CategoryCount struct {
	Category string `json:"_id" firestore:"category"`
	Count    int64  `json:"count" firestore:"count"`
}

type AssetStats struct {
	TotalAssets          int64           `json:"total_graphics"`
	TotalDownloads       int64           `json:"total_downloads"`
	CategoryDistribution []CategoryCount `json:"category_distribution"`
}
