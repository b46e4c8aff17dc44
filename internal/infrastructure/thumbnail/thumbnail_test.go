package thumbnail

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, uri string) string {
	t.Helper()
	const prefix = "data:image/svg+xml;base64,"
	require.True(t, strings.HasPrefix(uri, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)
	return string(raw)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		category string
		color    string
		label    string
	}{
		{"transitions", "#8B5CF6", "TRANSITIONS"},
		{"lower_thirds", "#EC4899", "LOWER_THIRDS"},
		{"logos", "#6366F1", "LOGOS"},
		{"mystery", "#6B7280", "MYSTERY"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			svg := decode(t, Generate(tt.category))
			assert.Contains(t, svg, "stop-color:"+tt.color+";")
			assert.Contains(t, svg, ">"+tt.label+"</text>")
			assert.Contains(t, svg, `x2="100%"`)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	assert.Equal(t, Generate("effects"), Generate("effects"))
	assert.NotEqual(t, Generate("effects"), Generate("overlays"))
}

func TestGenerate_EscapesLabel(t *testing.T) {
	svg := decode(t, Generate("<script>"))
	assert.NotContains(t, svg, "<SCRIPT>")
	assert.Contains(t, svg, "&lt;SCRIPT&gt;")
}
