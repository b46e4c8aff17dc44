package entity

import (
	"time"
)

const (
	KindCounter       = "counter"
	KindText          = "text"
	KindProgressBar   = "progress_bar"
	KindParticleBurst = "particle_burst"
	KindChart         = "chart"
	KindSocialCounter = "social_counter"
	KindCountdown     = "countdown"
	KindLogoReveal    = "logo_reveal"
	KindLoading       = "loading"
)

// EditableParam describes one user-editable template parameter. Which of the
// constraint fields apply depends on Type.
type EditableParam struct {
	Name      string   `json:"name" firestore:"name" yaml:"name"`
	Type      string   `json:"type" firestore:"type" yaml:"type"`
	Label     string   `json:"label" firestore:"label" yaml:"label"`
	Min       *float64 `json:"min,omitempty" firestore:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" firestore:"max,omitempty" yaml:"max,omitempty"`
	Step      *float64 `json:"step,omitempty" firestore:"step,omitempty" yaml:"step,omitempty"`
	Options   []string `json:"options,omitempty" firestore:"options,omitempty" yaml:"options,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" firestore:"maxLength,omitempty" yaml:"max_length,omitempty"`
}

// Template is a built-in, parametrized animation archetype.
type Template struct {
	ID             string                 `json:"id" firestore:"id" yaml:"-"`
	Name           string                 `json:"name" firestore:"name" yaml:"name"`
	Kind           string                 `json:"type" firestore:"kind" yaml:"kind"`
	Category       string                 `json:"category" firestore:"category" yaml:"category"`
	Description    string                 `json:"description" firestore:"description" yaml:"description"`
	PreviewURL     string                 `json:"preview_url,omitempty" firestore:"previewUrl,omitempty" yaml:"preview_url,omitempty"`
	DefaultConfig  map[string]interface{} `json:"default_config" firestore:"defaultConfig" yaml:"default_config"`
	EditableParams []EditableParam        `json:"editable_params" firestore:"editableParams" yaml:"editable_params"`
	CreatedAt      time.Time              `json:"created_at" firestore:"createdAt" yaml:"-"`
}

// HasParam reports whether name is one of the template's editable parameters.
func (t *Template) HasParam(name string) bool {
	for _, p := range t.EditableParams {
		if p.Name == name {
			return true
		}
	}
	return false
}
