package service

import (
	"context"
	"errors"
	"regexp"

	"portfolioapi/internal/apperr"
	"portfolioapi/internal/mailer"
	"portfolioapi/internal/models"
	"portfolioapi/internal/repository"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

type ContactFields struct {
	UserName string
	Email    string
	Phone    string
	Message  string
}

type ContactService interface {
	Submit(ctx context.Context, fields ContactFields) (*models.ContactSubmission, error)
	Get(ctx context.Context, id string) (*models.ContactSubmission, error)
	GetAll(ctx context.Context) ([]*models.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
	SendResponse(ctx context.Context, id, subject, emailBody string) error
}

type contactService struct {
	contactRepo repository.ContactRepository
	mail        mailer.Mailer
}

func NewContactService(contactRepo repository.ContactRepository, mail mailer.Mailer) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		mail:        mail,
	}
}

func (s *contactService) Submit(ctx context.Context, fields ContactFields) (*models.ContactSubmission, error) {
	if fields.UserName == "" || fields.Email == "" || fields.Phone == "" || fields.Message == "" {
		return nil, apperr.BadRequest("Required fields are missing.")
	}
	if !phonePattern.MatchString(fields.Phone) {
		return nil, apperr.BadRequest("Phone number must be exactly 10 digits.")
	}

	contact := &models.ContactSubmission{
		UserName: fields.UserName,
		Email:    fields.Email,
		Phone:    fields.Phone,
		Message:  fields.Message,
		Status:   true,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, apperr.PersistenceErr("Unable to post, please try again later.", err)
	}

	return contact, nil
}

func (s *contactService) Get(ctx context.Context, id string) (*models.ContactSubmission, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFoundErr("Requested application does not exist.")
		}
		return nil, apperr.UpstreamErr("Unable to look up application.", err)
	}
	return contact, nil
}

func (s *contactService) GetAll(ctx context.Context) ([]*models.ContactSubmission, error) {
	contacts, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, apperr.UpstreamErr("Unable to look up applications.", err)
	}
	return contacts, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFoundErr("Requested application does not exist.")
		}
		return apperr.PersistenceErr("Unable to delete, please try again later.", err)
	}
	return nil
}

func (s *contactService) SendResponse(ctx context.Context, id, subject, emailBody string) error {
	if subject == "" || emailBody == "" {
		return apperr.BadRequest("Subject and email body are required.")
	}

	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFoundErr("Requested resources are not found.")
		}
		return apperr.UpstreamErr("Unable to look up application.", err)
	}

	body := mailer.ContactResponseBody(contact.UserName, emailBody)
	if err := s.mail.Send(contact.Email, subject, body); err != nil {
		return apperr.UpstreamErr("Unable to send this mail, due to some technical problem. Please try again later.", err)
	}

	return nil
}
