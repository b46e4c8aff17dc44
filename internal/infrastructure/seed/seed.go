// Package seed holds the built-in animation template catalogue.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"motionstock/internal/domain/entity"
)

//go:embed templates.yaml
var templatesYAML []byte

var templateNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("motionstock/templates"))

// TemplateID is the stable identifier of the built-in template of a kind.
func TemplateID(kind string) string {
	return uuid.NewSHA1(templateNamespace, []byte(kind)).String()
}

// BuiltinTemplates decodes the embedded catalogue. Each call returns fresh
// values that callers may mutate.
func BuiltinTemplates() ([]*entity.Template, error) {
	return Parse(templatesYAML)
}

func Parse(data []byte) ([]*entity.Template, error) {
	var templates []*entity.Template
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse template catalogue: %w", err)
	}

	seen := make(map[string]bool, len(templates))
	for _, t := range templates {
		if t.Kind == "" {
			return nil, fmt.Errorf("template %q has no kind", t.Name)
		}
		if seen[t.Kind] {
			return nil, fmt.Errorf("duplicate template kind %q", t.Kind)
		}
		if !entity.IsTemplateCategory(t.Category) {
			return nil, fmt.Errorf("template %q has unknown category %q", t.Name, t.Category)
		}
		seen[t.Kind] = true
		t.ID = TemplateID(t.Kind)
		if t.DefaultConfig == nil {
			t.DefaultConfig = map[string]interface{}{}
		}
	}

	return templates, nil
}
