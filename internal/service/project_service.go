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

const maxTechnologies = 25

type ProjectFields struct {
	Name         string
	Author       string
	Type         string
	Owner        string
	Description  string
	LiveURL      string
	RepoURL      string
	Technologies []string
}

// ProjectFiles carries the four asset slots of a project. On create all
// four are required; on update each nil slot is carried forward unchanged.
type ProjectFiles struct {
	Logo       *FileUpload
	FirstPage  *FileUpload
	SecondPage *FileUpload
	ThirdPage  *FileUpload
}

type ProjectService interface {
	Create(ctx context.Context, fields ProjectFields, files ProjectFiles) (*models.Project, error)
	Update(ctx context.Context, id string, fields ProjectFields, files ProjectFiles) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Project, error)
	GetAll(ctx context.Context) ([]*models.Project, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	storage     storage.Storage
	logger      *slog.Logger
}

func NewProjectService(projectRepo repository.ProjectRepository, store storage.Storage, logger *slog.Logger) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		storage:     store,
		logger:      logger,
	}
}

func (s *projectService) Create(ctx context.Context, fields ProjectFields, files ProjectFiles) (*models.Project, error) {
	if files.Logo == nil || files.FirstPage == nil || files.SecondPage == nil || files.ThirdPage == nil {
		return nil, apperr.BadRequest("One or more required files are missing.")
	}
	if fields.Name == "" || fields.Author == "" || fields.Type == "" || fields.Description == "" ||
		fields.LiveURL == "" || fields.RepoURL == "" || len(fields.Technologies) == 0 {
		return nil, apperr.BadRequest("All fields are required.")
	}
	if len(fields.Technologies) > maxTechnologies {
		return nil, apperr.BadRequest("Technology list exceeds the limit of 25.")
	}

	uploads := []*FileUpload{files.Logo, files.FirstPage, files.SecondPage, files.ThirdPage}
	assets := make([]*storage.Asset, 0, len(uploads))

	removeAll := func() {
		for _, a := range assets {
			if err := s.storage.Remove(ctx, a.AssetID); err != nil {
				s.logger.Warn("orphaned asset after failed project create", "assetId", a.AssetID, "error", err)
			}
		}
	}

	for _, upload := range uploads {
		asset, err := s.storage.Upload(ctx, projectAssetFolder, upload.FileName, upload.Reader, upload.Size)
		if err != nil {
			removeAll()
			return nil, apperr.UpstreamErr("Something went wrong uploading project images, please try again later.", err)
		}
		assets = append(assets, asset)
	}

	project := &models.Project{
		Name:               fields.Name,
		Author:             fields.Author,
		Type:               fields.Type,
		Owner:              fields.Owner,
		Description:        fields.Description,
		LogoURL:            assets[0].URL,
		LogoAssetID:        assets[0].AssetID,
		FirstPageImageURL:  assets[1].URL,
		FirstPageAssetID:   assets[1].AssetID,
		SecondPageImageURL: assets[2].URL,
		SecondPageAssetID:  assets[2].AssetID,
		ThirdPageImageURL:  assets[3].URL,
		ThirdPageAssetID:   assets[3].AssetID,
		LiveURL:            fields.LiveURL,
		RepoURL:            fields.RepoURL,
		Technologies:       fields.Technologies,
		Status:             true,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		removeAll()
		return nil, apperr.PersistenceErr("Something went wrong, please try again later.", err)
	}

	return project, nil
}

func (s *projectService) Update(ctx context.Context, id string, fields ProjectFields, files ProjectFiles) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFoundErr("Requested project is not found.")
		}
		return apperr.UpstreamErr("Unable to look up project.", err)
	}

	// Each slot is replaced independently. New files go up before the
	// record moves; old assets come down only after it has.
	slots := []struct {
		file    *FileUpload
		url     *string
		assetID *string
	}{
		{files.Logo, &project.LogoURL, &project.LogoAssetID},
		{files.FirstPage, &project.FirstPageImageURL, &project.FirstPageAssetID},
		{files.SecondPage, &project.SecondPageImageURL, &project.SecondPageAssetID},
		{files.ThirdPage, &project.ThirdPageImageURL, &project.ThirdPageAssetID},
	}

	var replaced []string
	for _, slot := range slots {
		if slot.file == nil {
			continue
		}
		asset, err := s.storage.Upload(ctx, projectAssetFolder, slot.file.FileName, slot.file.Reader, slot.file.Size)
		if err != nil {
			return apperr.UpstreamErr("Something went wrong uploading project images, please try again later.", err)
		}
		replaced = append(replaced, *slot.assetID)
		*slot.url = asset.URL
		*slot.assetID = asset.AssetID
	}

	if fields.Name != "" {
		project.Name = fields.Name
	}
	if fields.Author != "" {
		project.Author = fields.Author
	}
	if fields.Type != "" {
		project.Type = fields.Type
	}
	if fields.Owner != "" {
		project.Owner = fields.Owner
	}
	if fields.Description != "" {
		project.Description = fields.Description
	}
	if fields.LiveURL != "" {
		project.LiveURL = fields.LiveURL
	}
	if fields.RepoURL != "" {
		project.RepoURL = fields.RepoURL
	}
	if len(fields.Technologies) > 0 {
		if len(fields.Technologies) > maxTechnologies {
			return apperr.BadRequest("Technology list exceeds the limit of 25.")
		}
		project.Technologies = fields.Technologies
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return apperr.PersistenceErr("Something went wrong, please try again later.", err)
	}

	for _, assetID := range replaced {
		if err := s.storage.Remove(ctx, assetID); err != nil {
			s.logger.Warn("failed to remove replaced project asset", "assetId", assetID, "error", err)
		}
	}

	return nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFoundErr("Requested resources are not found.")
		}
		return apperr.UpstreamErr("Unable to look up project.", err)
	}

	assetIDs := []string{
		project.LogoAssetID,
		project.FirstPageAssetID,
		project.SecondPageAssetID,
		project.ThirdPageAssetID,
	}

	for _, assetID := range assetIDs {
		if err := s.storage.Remove(ctx, assetID); err != nil {
			return apperr.UpstreamErr("Unable to remove project assets, please try again later.", err)
		}
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return apperr.PersistenceErr("Something went wrong, please try again later.", err)
	}

	return nil
}

func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFoundErr("Requested project is not found.")
		}
		return nil, apperr.UpstreamErr("Unable to look up project.", err)
	}
	return project, nil
}

func (s *projectService) GetAll(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return nil, apperr.UpstreamErr("Unable to look up projects.", err)
	}
	return projects, nil
}
