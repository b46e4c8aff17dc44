// Package thumbnail renders placeholder preview images for catalog assets.
package thumbnail

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"
)

const fallbackColor = "#6B7280"

var categoryColors = map[string]string{
	"transitions":     "#8B5CF6",
	"overlays":        "#F59E0B",
	"backgrounds":     "#3B82F6",
	"text_animations": "#EF4444",
	"effects":         "#10B981",
	"particles":       "#F97316",
	"shapes":          "#8B5CF6",
	"logos":           "#6366F1",
	"lower_thirds":    "#EC4899",
	"other":           "#6B7280",
}

const svgTemplate = `<svg width="300" height="200" xmlns="http://www.w3.org/2000/svg">
    <defs>
        <linearGradient id="grad" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
            <stop offset="0%%" style="stop-color:%[1]s;stop-opacity:1" />
            <stop offset="100%%" style="stop-color:%[1]s;stop-opacity:0.7" />
        </linearGradient>
    </defs>
    <rect width="300" height="200" fill="url(#grad)" />
    <circle cx="150" cy="100" r="30" fill="white" opacity="0.3"/>
    <polygon points="140,85 140,115 165,100" fill="white" opacity="0.8"/>
    <text x="150" y="140" text-anchor="middle" fill="white" font-family="Arial" font-size="12" opacity="0.9">%[2]s</text>
</svg>`

// Color returns the fill colour used for a category.
func Color(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return fallbackColor
}

// Generate returns a base64 SVG data URI for the category. The output depends
// only on the category.
func Generate(category string) string {
	label := html.EscapeString(strings.ToUpper(category))
	svg := fmt.Sprintf(svgTemplate, Color(category), label)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
