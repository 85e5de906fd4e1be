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

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, account *models.AdminAccount) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO admin_accounts (id, display_name, email, password_hash, created_at, updated_at)
		VALUES (:id, :display_name, :email, :password_hash, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, account)
	if err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}

	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*models.AdminAccount, error) {
	var account models.AdminAccount

	query := `SELECT * FROM admin_accounts WHERE id = $1`

	err := r.db.GetContext(ctx, &account, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin account %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting admin account: %w", err)
	}

	return &account, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	var account models.AdminAccount

	query := `SELECT * FROM admin_accounts WHERE email = $1`

	err := r.db.GetContext(ctx, &account, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin account with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("getting admin account by email: %w", err)
	}

	return &account, nil
}

func (r *adminRepository) GetByDisplayName(ctx context.Context, displayName string) (*models.AdminAccount, error) {
	var account models.AdminAccount

	query := `SELECT * FROM admin_accounts WHERE display_name = $1`

	err := r.db.GetContext(ctx, &account, query, displayName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin account %q: %w", displayName, ErrNotFound)
		}
		return nil, fmt.Errorf("getting admin account by display name: %w", err)
	}

	return &account, nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `
		UPDATE admin_accounts
		SET password_hash = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("admin account %s: %w", id, ErrNotFound)
	}

	return nil
}
