package service

import (
	"context"
	"errors"

	"portfolioapi/internal/apperr"
	"portfolioapi/internal/models"
	"portfolioapi/internal/repository"
)

const maxRatings = 5

type ReviewFields struct {
	UserName     string
	Organization string
	Gender       string
	Content      string
	Ratings      []int64
}

type ReviewService interface {
	Submit(ctx context.Context, fields ReviewFields) (*models.Review, error)
	GetAll(ctx context.Context) ([]*models.Review, error)
	Delete(ctx context.Context, id string) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) Submit(ctx context.Context, fields ReviewFields) (*models.Review, error) {
	if fields.UserName == "" || fields.Organization == "" || fields.Gender == "" ||
		fields.Content == "" || len(fields.Ratings) == 0 {
		return nil, apperr.BadRequest("All fields are required.")
	}
	if len(fields.Ratings) > maxRatings {
		return nil, apperr.BadRequest("Ratings list exceeds the limit of 5.")
	}

	review := &models.Review{
		UserName:     fields.UserName,
		Organization: fields.Organization,
		Gender:       fields.Gender,
		Content:      fields.Content,
		Ratings:      fields.Ratings,
		Status:       true,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperr.PersistenceErr("Requested data has not been saved, please try again later.", err)
	}

	return review, nil
}

func (s *reviewService) GetAll(ctx context.Context) ([]*models.Review, error) {
	reviews, err := s.reviewRepo.GetAll(ctx)
	if err != nil {
		return nil, apperr.UpstreamErr("Unable to look up reviews.", err)
	}
	return reviews, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	if _, err := s.reviewRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFoundErr("The requested data was not found.")
		}
		return apperr.UpstreamErr("Unable to look up review.", err)
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return apperr.PersistenceErr("Requested data has not been deleted, please try again later.", err)
	}

	return nil
}
