package app

import (
	"fmt"
	"log/slog"

	"portfolioapi/internal/config"
	"portfolioapi/internal/database"
	"portfolioapi/internal/mailer"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

// App connects the external dependencies and assembles the service layer.
func App(cfg *config.Config, logger *slog.Logger) (*database.DB, *service.Service, error) {
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	store, err := storage.NewMinIOClient(cfg)
	if err != nil {
		db.CloseDB()
		return nil, nil, fmt.Errorf("initializing object storage: %w", err)
	}

	mail := mailer.NewSMTPMailer(cfg)

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, store, mail, logger)

	return db, services, nil
}
