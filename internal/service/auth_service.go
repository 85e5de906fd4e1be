package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"portfolioapi/internal/apperr"
	"portfolioapi/internal/config"
	"portfolioapi/internal/mailer"
	"portfolioapi/internal/models"
	"portfolioapi/internal/repository"
)

type RegisterRequest struct {
	DisplayName     string
	Email           string
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, authorizationHeader string) (*models.AdminAccount, error)
	ChangePassword(ctx context.Context, accountID, newPassword, confirmPassword string) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, accountID, token, newPassword, confirmPassword string) error
}

type authService struct {
	adminRepo repository.AdminRepository
	cfg       *config.Config
	mail      mailer.Mailer
	logger    *slog.Logger
}

func NewAuthService(adminRepo repository.AdminRepository, cfg *config.Config, mail mailer.Mailer, logger *slog.Logger) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
		mail:      mail,
		logger:    logger,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if req.DisplayName == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return "", apperr.BadRequest("All fields are required.")
	}
	if req.Password != req.ConfirmPassword {
		return "", apperr.BadRequest("Password and confirm password are not same.")
	}

	existing, err := s.adminRepo.GetByDisplayName(ctx, req.DisplayName)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", apperr.UpstreamErr("Unable to check existing accounts.", err)
	}
	if existing != nil {
		return "", apperr.ConflictErr("Requested user with this name already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return "", apperr.UpstreamErr("Unable to hash password.", err)
	}

	account := &models.AdminAccount{
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.adminRepo.Create(ctx, account); err != nil {
		return "", apperr.PersistenceErr("Something went wrong, please try again later.", err)
	}

	token, err := s.signSessionToken(account.ID)
	if err != nil {
		return "", apperr.UpstreamErr("Unable to issue token.", err)
	}

	return token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperr.BadRequest("Email and password required.")
	}

	account, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same response as a wrong password so the endpoint never
			// confirms whether an email is registered.
			return "", apperr.Unauthorized("Email or password doesn't match.")
		}
		return "", apperr.UpstreamErr("Unable to look up account.", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", apperr.Unauthorized("Email or password doesn't match.")
	}

	token, err := s.signSessionToken(account.ID)
	if err != nil {
		return "", apperr.UpstreamErr("Unable to issue token.", err)
	}

	return token, nil
}

func (s *authService) Authenticate(ctx context.Context, authorizationHeader string) (*models.AdminAccount, error) {
	if authorizationHeader == "" {
		return nil, apperr.New(apperr.BadToken, "Bad Request!", "Authorization header is required.")
	}

	parts := strings.Split(authorizationHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, apperr.New(apperr.BadToken, "Bad Request!", "Authorization header must be of the form 'Bearer <token>'.")
	}

	accountID, err := s.verifyToken(parts[1], []byte(s.cfg.JWTSecretKey))
	if err != nil {
		return nil, apperr.Wrap(apperr.Auth, "Authentication failed!", "Token is invalid or expired.", err)
	}

	account, err := s.adminRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFoundErr("Requested user does not exist in our records.")
		}
		return nil, apperr.UpstreamErr("Unable to look up account.", err)
	}

	// Callers never see the hash.
	account.PasswordHash = ""
	return account, nil
}

func (s *authService) ChangePassword(ctx context.Context, accountID, newPassword, confirmPassword string) error {
	if newPassword == "" || confirmPassword == "" {
		return apperr.BadRequest("All fields are required.")
	}
	if newPassword != confirmPassword {
		return apperr.BadRequest("Password and confirm password are not same.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return apperr.UpstreamErr("Unable to hash password.", err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, accountID, string(hash)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.PersistenceErr("Something went wrong, please try again later.", err)
		}
		return apperr.UpstreamErr("Unable to update password.", err)
	}

	return nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", apperr.BadRequest("Email is required.")
	}

	account, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperr.NotFoundErr("Requested user with this email id does not exist.")
		}
		return "", apperr.UpstreamErr("Unable to look up account.", err)
	}

	token, err := s.signResetToken(account.ID)
	if err != nil {
		return "", apperr.UpstreamErr("Unable to issue reset token.", err)
	}

	link := fmt.Sprintf("%s/reset-password/%s/%s",
		strings.TrimSuffix(s.cfg.ClientBaseURL, "/"), account.ID, token)

	body := mailer.ResetPasswordBody(account.DisplayName, link)
	if err := s.mail.Send(account.Email, "Admin User Password Reset Request", body); err != nil {
		return "", apperr.UpstreamErr("Unable to send this mail due to technical problem, please try again later.", err)
	}

	s.logger.Info("password reset link sent", "accountId", account.ID)
	return link, nil
}

func (s *authService) ResetPassword(ctx context.Context, accountID, token, newPassword, confirmPassword string) error {
	if newPassword == "" || confirmPassword == "" {
		return apperr.BadRequest("All fields are required.")
	}
	if newPassword != confirmPassword {
		return apperr.BadRequest("Password and confirm password not match.")
	}

	account, err := s.adminRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFoundErr("Requested user does not exist in our records.")
		}
		return apperr.UpstreamErr("Unable to look up account.", err)
	}

	// Reset tokens are bound to one account: the signing secret mixes the
	// account id into the global key, so the token dies with either.
	if _, err := s.verifyToken(token, s.resetSecret(account.ID)); err != nil {
		return apperr.Wrap(apperr.Auth, "Authentication failed!", "Reset token is invalid or expired.", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return apperr.UpstreamErr("Unable to hash password.", err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, account.ID, string(hash)); err != nil {
		return apperr.PersistenceErr("Something went wrong, please try again later.", err)
	}

	return nil
}

func (s *authService) resetSecret(accountID string) []byte {
	return []byte(accountID + s.cfg.JWTSecretKey)
}

func (s *authService) signSessionToken(accountID string) (string, error) {
	return s.sign(accountID, []byte(s.cfg.JWTSecretKey), s.cfg.SessionTokenTTL)
}

func (s *authService) signResetToken(accountID string) (string, error) {
	return s.sign(accountID, s.resetSecret(accountID), s.cfg.ResetTokenTTL)
}

func (s *authService) sign(accountID string, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"adminId": accountID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// verifyToken checks signature and expiry and returns the adminId claim.
func (s *authService) verifyToken(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	accountID, ok := claims["adminId"].(string)
	if !ok || accountID == "" {
		return "", fmt.Errorf("token has no adminId claim")
	}

	return accountID, nil
}
