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

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.SubmittedAt.IsZero() {
		review.SubmittedAt = time.Now()
	}

	query := `
		INSERT INTO reviews (id, user_name, organization, gender, content, ratings, submitted_at, status)
		VALUES (:id, :user_name, :organization, :gender, :content, :ratings, :submitted_at, :status)
	`

	_, err := r.db.NamedExecContext(ctx, query, review)
	if err != nil {
		return fmt.Errorf("creating review: %w", err)
	}

	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review

	query := `SELECT * FROM reviews WHERE id = $1`

	err := r.db.GetContext(ctx, &review, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("review %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting review: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) GetAll(ctx context.Context) ([]*models.Review, error) {
	var reviews []*models.Review

	query := `SELECT * FROM reviews ORDER BY submitted_at DESC`

	err := r.db.SelectContext(ctx, &reviews, query)
	if err != nil {
		return nil, fmt.Errorf("getting reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("review %s: %w", id, ErrNotFound)
	}

	return nil
}
