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

type resumeRepository struct {
	db *sqlx.DB
}

func NewResumeRepository(db *sqlx.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	if resume.ID == "" {
		resume.ID = uuid.New().String()
	}
	now := time.Now()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	query := `
		INSERT INTO resumes (id, file_url, file_asset_id, status, created_at, updated_at)
		VALUES (:id, :file_url, :file_asset_id, :status, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, resume)
	if err != nil {
		return fmt.Errorf("creating resume: %w", err)
	}

	return nil
}

func (r *resumeRepository) GetByID(ctx context.Context, id string) (*models.Resume, error) {
	var resume models.Resume

	query := `SELECT * FROM resumes WHERE id = $1`

	err := r.db.GetContext(ctx, &resume, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("resume %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting resume: %w", err)
	}

	return &resume, nil
}

func (r *resumeRepository) GetAll(ctx context.Context) ([]*models.Resume, error) {
	var resumes []*models.Resume

	query := `SELECT * FROM resumes ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &resumes, query)
	if err != nil {
		return nil, fmt.Errorf("getting resumes: %w", err)
	}

	return resumes, nil
}

func (r *resumeRepository) Update(ctx context.Context, resume *models.Resume) error {
	resume.UpdatedAt = time.Now()

	query := `
		UPDATE resumes
		SET file_url = :file_url, file_asset_id = :file_asset_id, status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, resume)
	if err != nil {
		return fmt.Errorf("updating resume: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("resume %s: %w", resume.ID, ErrNotFound)
	}

	return nil
}

func (r *resumeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM resumes WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting resume: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("resume %s: %w", id, ErrNotFound)
	}

	return nil
}
