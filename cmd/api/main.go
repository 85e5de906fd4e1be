package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/didip/tollbooth/v6"
	"github.com/gorilla/mux"

	"portfolioapi/cmd/app"
	"portfolioapi/internal/config"
	handlers "portfolioapi/internal/handler"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, services, err := app.App(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg, logger)

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.HealthCheck(); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// open auth routes
	r.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/reset-password-link", handler.SendResetPasswordLink).Methods(http.MethodPost)
	r.HandleFunc("/auth/reset-password/{id}/{token}", handler.ResetPassword).Methods(http.MethodPut)

	// gated auth routes
	r.Handle("/auth/current-user", handler.AccessGate(http.HandlerFunc(handler.GetCurrentUser))).Methods(http.MethodGet)
	r.Handle("/auth/change-password", handler.AccessGate(http.HandlerFunc(handler.ChangePassword))).Methods(http.MethodPut)

	// articles
	r.HandleFunc("/blogs/content", handler.GetArticles).Methods(http.MethodGet)
	r.HandleFunc("/blogs/content/{id}", handler.GetArticles).Methods(http.MethodGet)
	r.Handle("/blogs/content", handler.AccessGate(http.HandlerFunc(handler.CreateArticle))).Methods(http.MethodPost)
	r.Handle("/blogs/content/{id}", handler.AccessGate(http.HandlerFunc(handler.UpdateArticle))).Methods(http.MethodPatch)
	r.Handle("/blogs/content/{id}", handler.AccessGate(http.HandlerFunc(handler.DeleteArticle))).Methods(http.MethodDelete)

	// projects
	r.HandleFunc("/projects/showcase", handler.GetProjects).Methods(http.MethodGet)
	r.HandleFunc("/projects/showcase/{id}", handler.GetProjects).Methods(http.MethodGet)
	r.Handle("/projects/showcase", handler.AccessGate(http.HandlerFunc(handler.CreateProject))).Methods(http.MethodPost)
	r.Handle("/projects/showcase/{id}", handler.AccessGate(http.HandlerFunc(handler.UpdateProject))).Methods(http.MethodPatch)
	r.Handle("/projects/showcase/{id}", handler.AccessGate(http.HandlerFunc(handler.DeleteProject))).Methods(http.MethodDelete)

	// resume
	r.HandleFunc("/resume/file", handler.GetResumes).Methods(http.MethodGet)
	r.HandleFunc("/resume/file/{id}", handler.GetResumes).Methods(http.MethodGet)
	r.Handle("/resume/file", handler.AccessGate(http.HandlerFunc(handler.CreateResume))).Methods(http.MethodPost)
	r.Handle("/resume/file/{id}", handler.AccessGate(http.HandlerFunc(handler.UpdateResume))).Methods(http.MethodPut)
	r.Handle("/resume/file/{id}", handler.AccessGate(http.HandlerFunc(handler.DeleteResume))).Methods(http.MethodDelete)

	// public submissions are rate limited
	limiter := tollbooth.NewLimiter(cfg.PublicRateLimit, nil)

	r.Handle("/contacts/application", tollbooth.LimitFuncHandler(limiter, handler.SubmitContact)).Methods(http.MethodPost)
	r.Handle("/contacts/application", handler.AccessGate(http.HandlerFunc(handler.GetContacts))).Methods(http.MethodGet)
	r.Handle("/contacts/application/{id}", handler.AccessGate(http.HandlerFunc(handler.GetContacts))).Methods(http.MethodGet)
	r.Handle("/contacts/application/{id}", handler.AccessGate(http.HandlerFunc(handler.DeleteContact))).Methods(http.MethodDelete)
	r.Handle("/contacts/response/{id}", handler.AccessGate(http.HandlerFunc(handler.SendContactResponse))).Methods(http.MethodPost)

	// reviews
	r.Handle("/reviews/client", tollbooth.LimitFuncHandler(limiter, handler.SubmitReview)).Methods(http.MethodPost)
	r.HandleFunc("/reviews/client", handler.GetReviews).Methods(http.MethodGet)
	r.Handle("/reviews/client/{id}", handler.AccessGate(http.HandlerFunc(handler.DeleteReview))).Methods(http.MethodDelete)

	handlerChain := handlers.Chain(
		r,
		handlers.RequestIDMiddleware,
		handlers.LoggingMiddleware(logger),
		handlers.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("server starting", "addr", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
