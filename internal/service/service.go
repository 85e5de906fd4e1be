package service

import (
	"io"
	"log/slog"

	"portfolioapi/internal/config"
	"portfolioapi/internal/mailer"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/storage"
)

// FileUpload is one multipart file part handed down from a handler.
type FileUpload struct {
	FileName string
	Reader   io.Reader
	Size     int64
}

// Folder names inside the asset bucket, one per entity type.
const (
	articleAssetFolder = "blog_assets"
	projectAssetFolder = "all_projects"
	resumeAssetFolder  = "resume"
)

type Service struct {
	Auth    AuthService
	Article ArticleService
	Project ProjectService
	Resume  ResumeService
	Contact ContactService
	Review  ReviewService
}

func NewService(repo *repository.Repository, cfg *config.Config, store storage.Storage, mail mailer.Mailer, logger *slog.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.Admin, cfg, mail, logger),
		Article: NewArticleService(repo.Article, store, logger),
		Project: NewProjectService(repo.Project, store, logger),
		Resume:  NewResumeService(repo.Resume, store, logger),
		Contact: NewContactService(repo.Contact, mail),
		Review:  NewReviewService(repo.Review),
	}
}
