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

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.ContactSubmission) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	contact.CreatedAt = time.Now()

	query := `
		INSERT INTO contact_submissions (id, user_name, email, phone, message, status, created_at)
		VALUES (:id, :user_name, :email, :phone, :message, :status, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, contact)
	if err != nil {
		return fmt.Errorf("creating contact submission: %w", err)
	}

	return nil
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	var contact models.ContactSubmission

	query := `SELECT * FROM contact_submissions WHERE id = $1`

	err := r.db.GetContext(ctx, &contact, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("contact submission %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting contact submission: %w", err)
	}

	return &contact, nil
}

func (r *contactRepository) GetAll(ctx context.Context) ([]*models.ContactSubmission, error) {
	var contacts []*models.ContactSubmission

	query := `SELECT * FROM contact_submissions ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &contacts, query)
	if err != nil {
		return nil, fmt.Errorf("getting contact submissions: %w", err)
	}

	return contacts, nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM contact_submissions WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting contact submission: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("contact submission %s: %w", id, ErrNotFound)
	}

	return nil
}
