package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"portfolioapi/internal/models"
)

// ErrNotFound is returned when a requested row does not exist. Services
// translate it into a 404 at their boundary.
var ErrNotFound = errors.New("not found")

type AdminRepository interface {
	Create(ctx context.Context, account *models.AdminAccount) error
	GetByID(ctx context.Context, id string) (*models.AdminAccount, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	GetByDisplayName(ctx context.Context, displayName string) (*models.AdminAccount, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetAll(ctx context.Context) ([]*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetAll(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	GetByID(ctx context.Context, id string) (*models.Resume, error)
	GetAll(ctx context.Context) ([]*models.Resume, error)
	Update(ctx context.Context, resume *models.Resume) error
	Delete(ctx context.Context, id string) error
}

type ContactRepository interface {
	Create(ctx context.Context, contact *models.ContactSubmission) error
	GetByID(ctx context.Context, id string) (*models.ContactSubmission, error)
	GetAll(ctx context.Context) ([]*models.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	GetAll(ctx context.Context) ([]*models.Review, error)
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	Admin   AdminRepository
	Article ArticleRepository
	Project ProjectRepository
	Resume  ResumeRepository
	Contact ContactRepository
	Review  ReviewRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Admin:   NewAdminRepository(db),
		Article: NewArticleRepository(db),
		Project: NewProjectRepository(db),
		Resume:  NewResumeRepository(db),
		Contact: NewContactRepository(db),
		Review:  NewReviewRepository(db),
	}
}
