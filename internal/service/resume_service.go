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

type ResumeService interface {
	Create(ctx context.Context, file *FileUpload) (*models.Resume, error)
	Update(ctx context.Context, id string, file *FileUpload) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Resume, error)
	GetAll(ctx context.Context) ([]*models.Resume, error)
}

type resumeService struct {
	resumeRepo repository.ResumeRepository
	storage    storage.Storage
	logger     *slog.Logger
}

func NewResumeService(resumeRepo repository.ResumeRepository, store storage.Storage, logger *slog.Logger) ResumeService {
	return &resumeService{
		resumeRepo: resumeRepo,
		storage:    store,
		logger:     logger,
	}
}

func (s *resumeService) Create(ctx context.Context, file *FileUpload) (*models.Resume, error) {
	if file == nil {
		return nil, apperr.BadRequest("A resume file is required.")
	}

	asset, err := s.storage.Upload(ctx, resumeAssetFolder, file.FileName, file.Reader, file.Size)
	if err != nil {
		return nil, apperr.UpstreamErr("Something went wrong uploading the resume, please try again later.", err)
	}

	resume := &models.Resume{
		FileURL:     asset.URL,
		FileAssetID: asset.AssetID,
		Status:      true,
	}

	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		if rmErr := s.storage.Remove(ctx, asset.AssetID); rmErr != nil {
			s.logger.Warn("orphaned asset after failed resume insert", "assetId", asset.AssetID, "error", rmErr)
		}
		return nil, apperr.PersistenceErr("Unable to upload resume, please try again later.", err)
	}

	return resume, nil
}

func (s *resumeService) Update(ctx context.Context, id string, file *FileUpload) error {
	resume, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFoundErr("Requested resume does not exist.")
		}
		return apperr.UpstreamErr("Unable to look up resume.", err)
	}

	if file == nil {
		return apperr.BadRequest("A resume file is required.")
	}

	asset, err := s.storage.Upload(ctx, resumeAssetFolder, file.FileName, file.Reader, file.Size)
	if err != nil {
		return apperr.UpstreamErr("Something went wrong uploading the resume, please try again later.", err)
	}

	oldAssetID := resume.FileAssetID
	resume.FileURL = asset.URL
	resume.FileAssetID = asset.AssetID

	if err := s.resumeRepo.Update(ctx, resume); err != nil {
		return apperr.PersistenceErr("Unable to upload resume, please try again later.", err)
	}

	if err := s.storage.Remove(ctx, oldAssetID); err != nil {
		s.logger.Warn("failed to remove replaced resume asset", "assetId", oldAssetID, "error", err)
	}

	return nil
}

func (s *resumeService) Delete(ctx context.Context, id string) error {
	resume, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFoundErr("Requested resume does not exist.")
		}
		return apperr.UpstreamErr("Unable to look up resume.", err)
	}

	if err := s.storage.Remove(ctx, resume.FileAssetID); err != nil {
		return apperr.UpstreamErr("Unable to remove the resume file, please try again later.", err)
	}

	if err := s.resumeRepo.Delete(ctx, id); err != nil {
		return apperr.PersistenceErr("Unable to delete resume, please try again later.", err)
	}

	return nil
}

func (s *resumeService) Get(ctx context.Context, id string) (*models.Resume, error) {
	resume, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFoundErr("Requested resume does not exist.")
		}
		return nil, apperr.UpstreamErr("Unable to look up resume.", err)
	}
	return resume, nil
}

func (s *resumeService) GetAll(ctx context.Context) ([]*models.Resume, error) {
	resumes, err := s.resumeRepo.GetAll(ctx)
	if err != nil {
		return nil, apperr.UpstreamErr("Unable to look up resumes.", err)
	}
	return resumes, nil
}
