package entity

import "sort"

// AssetCategories is the fixed classification set for uploaded assets.
var AssetCategories = []string{
	"transitions",
	"overlays",
	"backgrounds",
	"text_animations",
	"effects",
	"particles",
	"shapes",
	"logos",
	"lower_thirds",
	"other",
}

// TemplateCategories is the fixed classification set for templates.
var TemplateCategories = []string{
	"business",
	"social",
	"utility",
	"creative",
	"data",
}

// AllowedUploadTypes are the content types accepted for asset uploads:
// MP4, MOV, AVI and ZIP.
var AllowedUploadTypes = []string{
	"video/mp4",
	"video/quicktime",
	"video/x-msvideo",
	"application/zip",
}

func IsAssetCategory(category string) bool {
	return contains(AssetCategories, category)
}

func IsTemplateCategory(category string) bool {
	return contains(TemplateCategories, category)
}

func IsAllowedUploadType(contentType string) bool {
	return contains(AllowedUploadTypes, contentType)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// SortCategoryCounts orders a distribution by count descending, then by name.
func SortCategoryCounts(counts []CategoryCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Category < counts[j].Category
	})
}

// Tally builds a sorted distribution from a category -> count map.
func Tally(byCategory map[string]int64) []CategoryCount {
	counts := make([]CategoryCount, 0, len(byCategory))
	for category, n := range byCategory {
		counts = append(counts, CategoryCount{Category: category, Count: n})
	}
	SortCategoryCounts(counts)
	return counts
}
