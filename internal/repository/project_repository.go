package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"portfolioapi/internal/models"
)

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `
		INSERT INTO projects (id, name, author, type, owner, description,
			logo_url, logo_asset_id, first_page_image_url, first_page_asset_id,
			second_page_image_url, second_page_asset_id, third_page_image_url, third_page_asset_id,
			live_url, repo_url, technologies, status, created_at, updated_at)
		VALUES (:id, :name, :author, :type, :owner, :description,
			:logo_url, :logo_asset_id, :first_page_image_url, :first_page_asset_id,
			:second_page_image_url, :second_page_asset_id, :third_page_image_url, :third_page_asset_id,
			:live_url, :repo_url, :technologies, :status, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, project)
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project

	query := `SELECT * FROM projects WHERE id = $1`

	err := r.db.GetContext(ctx, &project, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return &project, nil
}

func (r *projectRepository) GetAll(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project

	query := `SELECT * FROM projects ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &projects, query)
	if err != nil {
		return nil, fmt.Errorf("getting projects: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()

	query := `
		UPDATE projects
		SET name = :name, author = :author, type = :type, owner = :owner,
			description = :description, logo_url = :logo_url, logo_asset_id = :logo_asset_id,
			first_page_image_url = :first_page_image_url, first_page_asset_id = :first_page_asset_id,
			second_page_image_url = :second_page_image_url, second_page_asset_id = :second_page_asset_id,
			third_page_image_url = :third_page_image_url, third_page_asset_id = :third_page_asset_id,
			live_url = :live_url, repo_url = :repo_url, technologies = :technologies,
			status = :status, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, project)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("project %s: %w", project.ID, ErrNotFound)
	}

	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}

	return nil
}
