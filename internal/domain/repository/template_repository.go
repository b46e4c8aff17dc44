package repository

import (
	"context"

	"motionstock/internal/domain/entity"
)

type TemplateRepository interface {
	// Upsert inserts the template unless one with the same ID already exists.
	// It reports whether a new record was written.
	Upsert(ctx context.Context, template *entity.Template) (bool, error)
	GetByID(ctx context.Context, id string) (*entity.Template, error)
	List(ctx context.Context) ([]*entity.Template, error)
	Count(ctx context.Context) (int64, error)
}
