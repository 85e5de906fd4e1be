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

type articleRepository struct {
	db *sqlx.DB
}

func NewArticleRepository(db *sqlx.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now

	query := `
		INSERT INTO articles (id, title, author_name, body_heading, body_text, code_snippet,
			command_line_snippet, image_url, image_asset_id, status, created_at, updated_at)
		VALUES (:id, :title, :author_name, :body_heading, :body_text, :code_snippet,
			:command_line_snippet, :image_url, :image_asset_id, :status, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, article)
	if err != nil {
		return fmt.Errorf("creating article: %w", err)
	}

	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article

	query := `SELECT * FROM articles WHERE id = $1`

	err := r.db.GetContext(ctx, &article, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting article: %w", err)
	}

	return &article, nil
}

func (r *articleRepository) GetAll(ctx context.Context) ([]*models.Article, error) {
	var articles []*models.Article

	query := `SELECT * FROM articles ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &articles, query)
	if err != nil {
		return nil, fmt.Errorf("getting articles: %w", err)
	}

	return articles, nil
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	article.UpdatedAt = time.Now()

	query := `
		UPDATE articles
		SET title = :title, author_name = :author_name, body_heading = :body_heading,
			body_text = :body_text, code_snippet = :code_snippet,
			command_line_snippet = :command_line_snippet, image_url = :image_url,
			image_asset_id = :image_asset_id, status = :status, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, article)
	if err != nil {
		return fmt.Errorf("updating article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("article %s: %w", article.ID, ErrNotFound)
	}

	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM articles WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("article %s: %w", id, ErrNotFound)
	}

	return nil
}
