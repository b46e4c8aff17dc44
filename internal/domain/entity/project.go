package entity

import (
	"time"
)

// Project is a user's parametrized instance of a template.
type Project struct {
	ID         string                 `json:"id" firestore:"id"`
	TemplateID string                 `json:"template_id" firestore:"templateId"`
	Name       string                 `json:"name" firestore:"name"`
	Config     map[string]interface{} `json:"config" firestore:"config"`
	CreatedAt  time.Time              `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time              `json:"updated_at" firestore:"updatedAt"`
}

type ProjectPatch struct {
	Name   *string                 `json:"name"`
	Config *map[string]interface{} `json:"config"`
}

func (p ProjectPatch) Apply(project *Project) {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Config != nil {
		project.Config = *p.Config
	}
}
