package handlers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"portfolioapi/internal/config"
	"portfolioapi/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	ArticleService service.ArticleService
	ProjectService service.ProjectService
	ResumeService  service.ResumeService
	ContactService service.ContactService
	ReviewService  service.ReviewService
	Cfg            *config.Config
	Validate       *validator.Validate
	Logger         *slog.Logger
}

func NewHandlers(services *service.Service, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		ArticleService: services.Article,
		ProjectService: services.Project,
		ResumeService:  services.Resume,
		ContactService: services.Contact,
		ReviewService:  services.Review,
		Cfg:            cfg,
		Validate:       validator.New(),
		Logger:         logger,
	}
}
