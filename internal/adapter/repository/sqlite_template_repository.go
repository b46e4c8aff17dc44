package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"motionstock/internal/domain/entity"
	"motionstock/internal/domain/repository"
	"motionstock/pkg/errors"
)

const templateColumns = `id, name, kind, category, description, preview_url,
	default_config, editable_params, created_at`

type sqliteTemplateRepository struct {
	db *sql.DB
}

func NewSQLiteTemplateRepository(db *sql.DB) repository.TemplateRepository {
	return &sqliteTemplateRepository{db: db}
}

func (r *sqliteTemplateRepository) Upsert(ctx context.Context, template *entity.Template) (bool, error) {
	defaults, err := encodeJSON(template.DefaultConfig)
	if err != nil {
		return false, errors.Internal("Failed to encode template defaults", err)
	}
	params, err := encodeJSON(template.EditableParams)
	if err != nil {
		return false, errors.Internal("Failed to encode template params", err)
	}

	result, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO templates (`+templateColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		template.ID, template.Name, template.Kind, template.Category, template.Description,
		template.PreviewURL, defaults, params, formatTime(template.CreatedAt),
	)
	if err != nil {
		return false, errors.Internal("Failed to seed template", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, errors.Internal("Failed to seed template", err)
	}
	return n == 1, nil
}

func (r *sqliteTemplateRepository) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+templateColumns+` FROM templates WHERE id = ?`, id)
	template, err := scanTemplate(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("Template", err)
		}
		return nil, errors.Internal("Failed to get template", err)
	}
	return template, nil
}

func (r *sqliteTemplateRepository) List(ctx context.Context) ([]*entity.Template, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+templateColumns+` FROM templates ORDER BY rowid`)
	if err != nil {
		return nil, errors.Internal("Failed to query templates", err)
	}
	defer rows.Close()

	templates := []*entity.Template{}
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, errors.Internal("Failed to parse template data", err)
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Internal("Failed to iterate templates", err)
	}
	return templates, nil
}

func (r *sqliteTemplateRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM templates`).Scan(&n); err != nil {
		return 0, errors.Internal("Failed to count templates", err)
	}
	return n, nil
}

func scanTemplate(s scanner) (*entity.Template, error) {
	var (
		template  entity.Template
		defaults  string
		params    string
		createdAt string
	)
	err := s.Scan(&template.ID, &template.Name, &template.Kind, &template.Category,
		&template.Description, &template.PreviewURL, &defaults, &params, &createdAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(defaults), &template.DefaultConfig); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(params), &template.EditableParams); err != nil {
		return nil, err
	}
	if template.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &template, nil
}
