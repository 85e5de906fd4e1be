package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"portfolioapi/internal/apperr"
	"portfolioapi/internal/service"
)

type RegisterRequest struct {
	DisplayName     string `json:"displayName" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PasswordChangeRequest struct {
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type ResetLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Request body is not valid JSON.")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeBadRequest(w, "All fields are required and passwords must match.")
		return
	}

	token, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		DisplayName:     req.DisplayName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":           "Registration successful!",
		"details":           "Congratulations!",
		"valid_admin_token": token,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Request body is not valid JSON.")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeBadRequest(w, "Email and password required.")
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":             "Login successful!",
		"details":             "Welcome to admin dashboard.",
		"authentication_sign": token,
	})
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	account := CurrentUser(r.Context())
	if account == nil {
		writeBadRequest(w, "Request is not valid.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"userDetails": account,
	})
}

func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	account := CurrentUser(r.Context())
	if account == nil {
		writeBadRequest(w, "Request is not valid.")
		return
	}

	var req PasswordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Request body is not valid JSON.")
		return
	}

	if err := h.AuthService.ChangePassword(r.Context(), account.ID, req.Password, req.ConfirmPassword); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"details": "Password has been successfully updated.",
	})
}

func (h *Handlers) SendResetPasswordLink(w http.ResponseWriter, r *http.Request) {
	var req ResetLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Request body is not valid JSON.")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeBadRequest(w, "A valid email is required.")
		return
	}

	link, err := h.AuthService.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		// An unknown email gets the same generic acceptance as a known
		// one, so the endpoint cannot be used to probe registrations.
		if apperr.IsKind(err, apperr.NotFound) {
			writeJSON(w, http.StatusAccepted, map[string]string{
				"message": "Request accepted.",
				"details": "If that email is registered, a reset link has been sent.",
			})
			return
		}
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":      "Email has been sent successfully.",
		"resetLink":    link,
		"notification": "Password reset link has been sent to the requested email account.",
	})
}

func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	accountID := vars["id"]
	token := vars["token"]

	var req PasswordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Request body is not valid JSON.")
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), accountID, token, req.Password, req.ConfirmPassword); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully Reset!",
		"details": "Your password has been updated.",
	})
}
