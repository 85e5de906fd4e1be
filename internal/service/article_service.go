package service

import (
	"context"
	"errors"
	"log/slog"

	"portfolioapi/internal/apperr"
	"portfolioapi/internal/models"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/storage"
)

type ArticleFields struct {
	Title              string
	AuthorName         string
	BodyHeading        string
	BodyText           string
	CodeSnippet        string
	CommandLineSnippet string
}

type ArticleService interface {
	Create(ctx context.Context, fields ArticleFields, image *FileUpload) (*models.Article, error)
	Update(ctx context.Context, id string, fields ArticleFields, image *FileUpload) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Article, error)
	GetAll(ctx context.Context) ([]*models.Article, error)
}

type articleService struct {
	articleRepo repository.ArticleRepository
	storage     storage.Storage
	logger      *slog.Logger
}

func NewArticleService(articleRepo repository.ArticleRepository, store storage.Storage, logger *slog.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		storage:     store,
		logger:      logger,
	}
}

func (s *articleService) Create(ctx context.Context, fields ArticleFields, image *FileUpload) (*models.Article, error) {
	if image == nil {
		return nil, apperr.BadRequest("A supporting image file is required.")
	}
	if fields.Title == "" || fields.AuthorName == "" || fields.BodyHeading == "" || fields.BodyText == "" {
		return nil, apperr.BadRequest("All fields are required.")
	}

	asset, err := s.storage.Upload(ctx, articleAssetFolder, image.FileName, image.Reader, image.Size)
	if err != nil {
		return nil, apperr.UpstreamErr("Something went wrong uploading the image, please try again later.", err)
	}

	article := &models.Article{
		Title:              fields.Title,
		AuthorName:         fields.AuthorName,
		BodyHeading:        fields.BodyHeading,
		BodyText:           fields.BodyText,
		CodeSnippet:        fields.CodeSnippet,
		CommandLineSnippet: fields.CommandLineSnippet,
		ImageURL:           asset.URL,
		ImageAssetID:       asset.AssetID,
		Status:             true,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		// The record never existed, so the fresh upload is the only thing
		// to clean up. Best effort: a failure here only orphans an asset.
		if rmErr := s.storage.Remove(ctx, asset.AssetID); rmErr != nil {
			s.logger.Warn("orphaned asset after failed article insert", "assetId", asset.AssetID, "error", rmErr)
		}
		return nil, apperr.PersistenceErr("Unable to upload blog, please try again later.", err)
	}

	return article, nil
}

func (s *articleService) Update(ctx context.Context, id string, fields ArticleFields, image *FileUpload) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFoundErr("Requested blog does not exist.")
		}
		return apperr.UpstreamErr("Unable to look up blog.", err)
	}

	oldAssetID := ""
	if image != nil {
		asset, err := s.storage.Upload(ctx, articleAssetFolder, image.FileName, image.Reader, image.Size)
		if err != nil {
			return apperr.UpstreamErr("Something went wrong uploading the image, please try again later.", err)
		}
		oldAssetID = article.ImageAssetID
		article.ImageURL = asset.URL
		article.ImageAssetID = asset.AssetID
	}

	// Shallow merge: absent fields keep their previous values.
	if fields.Title != "" {
		article.Title = fields.Title
	}
	if fields.AuthorName != "" {
		article.AuthorName = fields.AuthorName
	}
	if fields.BodyHeading != "" {
		article.BodyHeading = fields.BodyHeading
	}
	if fields.BodyText != "" {
		article.BodyText = fields.BodyText
	}
	if fields.CodeSnippet != "" {
		article.CodeSnippet = fields.CodeSnippet
	}
	if fields.CommandLineSnippet != "" {
		article.CommandLineSnippet = fields.CommandLineSnippet
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return apperr.PersistenceErr("Unable to update blog, please try again later.", err)
	}

	// The record already points at the new asset; the old one is
	// unreferenced now, so its removal is allowed to fail quietly.
	if oldAssetID != "" {
		if err := s.storage.Remove(ctx, oldAssetID); err != nil {
			s.logger.Warn("failed to remove replaced article asset", "assetId", oldAssetID, "error", err)
		}
	}

	return nil
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFoundErr("Requested blog does not exist.")
		}
		return apperr.UpstreamErr("Unable to look up blog.", err)
	}

	// Asset first, record second: if the store refuses the delete the
	// record survives and still points at a live object.
	if err := s.storage.Remove(ctx, article.ImageAssetID); err != nil {
		return apperr.UpstreamErr("Unable to remove the blog image, please try again later.", err)
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return apperr.PersistenceErr("Unable to delete blog, please try again later.", err)
	}

	return nil
}

func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFoundErr("Requested blog does not exist.")
		}
		return nil, apperr.UpstreamErr("Unable to look up blog.", err)
	}
	return article, nil
}

func (s *articleService) GetAll(ctx context.Context) ([]*models.Article, error) {
	articles, err := s.articleRepo.GetAll(ctx)
	if err != nil {
		return nil, apperr.UpstreamErr("Unable to look up blogs.", err)
	}
	return articles, nil
}
