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

const projectColumns = `id, template_id, name, config, created_at, updated_at`

type sqliteProjectRepository struct {
	db *sql.DB
}

func NewSQLiteProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &sqliteProjectRepository{db: db}
}

func (r *sqliteProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	config, err := encodeJSON(project.Config)
	if err != nil {
		return errors.Internal("Failed to encode project config", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		project.ID, project.TemplateID, project.Name, config,
		formatTime(project.CreatedAt), formatTime(project.UpdatedAt),
	)
	if err != nil {
		return errors.Internal("Failed to create project", err)
	}
	return nil
}

func (r *sqliteProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	project, err := scanProject(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("Project", err)
		}
		return nil, errors.Internal("Failed to get project", err)
	}
	return project, nil
}

func (r *sqliteProjectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY rowid`)
	if err != nil {
		return nil, errors.Internal("Failed to query projects", err)
	}
	defer rows.Close()

	projects := []*entity.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, errors.Internal("Failed to parse project data", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Internal("Failed to iterate projects", err)
	}
	return projects, nil
}

func (r *sqliteProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	config, err := encodeJSON(project.Config)
	if err != nil {
		return errors.Internal("Failed to encode project config", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, config = ?, updated_at = ? WHERE id = ?`,
		project.Name, config, formatTime(project.UpdatedAt), project.ID,
	)
	return affectedOne(result, err, "Project", "Failed to update project")
}

func (r *sqliteProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return affectedOne(result, err, "Project", "Failed to delete project")
}

func scanProject(s scanner) (*entity.Project, error) {
	var (
		project   entity.Project
		config    string
		createdAt string
		updatedAt string
	)
	if err := s.Scan(&project.ID, &project.TemplateID, &project.Name, &config, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(config), &project.Config); err != nil {
		return nil, err
	}
	var err error
	if project.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if project.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &project, nil
}
