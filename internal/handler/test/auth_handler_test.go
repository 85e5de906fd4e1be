package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/apperr"
	"portfolioapi/internal/service"
)

func postJSON(t *testing.T, target string, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegisterHandler_Success(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.auth.On("Register", mock.Anything, service.RegisterRequest{
		DisplayName:     "Admin",
		Email:           "admin@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}).Return("signed-token-123", nil)

	req := postJSON(t, "/auth/register", map[string]string{
		"displayName":     "Admin",
		"email":           "admin@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
	})
	rr := httptest.NewRecorder()

	handler.Register(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusCreated)
	assert.Equal(t, "signed-token-123", response["valid_admin_token"])
	assert.Equal(t, "Registration successful!", response["message"])
	mocks.auth.AssertExpectations(t)
}

func TestRegisterHandler_PasswordMismatch(t *testing.T) {
	handler, mocks := createTestHandler()

	req := postJSON(t, "/auth/register", map[string]string{
		"displayName":     "Admin",
		"email":           "admin@example.com",
		"password":        "password123",
		"confirmPassword": "different",
	})
	rr := httptest.NewRecorder()

	handler.Register(rr, req)

	assertJSONIssue(t, rr, http.StatusBadRequest)
	mocks.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterHandler_DuplicateDisplayName(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.auth.On("Register", mock.Anything, mock.Anything).
		Return("", apperr.ConflictErr("An account with this name already exists."))

	req := postJSON(t, "/auth/register", map[string]string{
		"displayName":     "Admin",
		"email":           "admin@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
	})
	rr := httptest.NewRecorder()

	handler.Register(rr, req)

	assertJSONIssue(t, rr, http.StatusConflict)
}

func TestLoginHandler_Success(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.auth.On("Login", mock.Anything, "admin@example.com", "password123").
		Return("session-token", nil)

	req := postJSON(t, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "password123",
	})
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "session-token", response["authentication_sign"])
	mocks.auth.AssertExpectations(t)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.auth.On("Login", mock.Anything, "admin@example.com", "wrong").
		Return("", apperr.Unauthorized("Email or password is incorrect."))

	req := postJSON(t, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	response := assertJSONIssue(t, rr, http.StatusUnauthorized)
	assert.Equal(t, "Email or password is incorrect.", response["details"])
}

func TestLoginHandler_MissingFields(t *testing.T) {
	handler, mocks := createTestHandler()

	req := postJSON(t, "/auth/login", map[string]string{"email": "admin@example.com"})
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assertJSONIssue(t, rr, http.StatusBadRequest)
	mocks.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendResetPasswordLink_UnknownEmail(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.auth.On("RequestPasswordReset", mock.Anything, "ghost@example.com").
		Return("", apperr.NotFoundErr("No account is registered with this email."))

	req := postJSON(t, "/auth/reset-password-link", map[string]string{
		"email": "ghost@example.com",
	})
	rr := httptest.NewRecorder()

	handler.SendResetPasswordLink(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusAccepted)
	assert.Equal(t, "Request accepted.", response["message"])
	assert.NotContains(t, response, "resetLink")
}

func TestSendResetPasswordLink_KnownEmail(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.auth.On("RequestPasswordReset", mock.Anything, "admin@example.com").
		Return("http://localhost:3000/reset-password/acc-1/tok-1", nil)

	req := postJSON(t, "/auth/reset-password-link", map[string]string{
		"email": "admin@example.com",
	})
	rr := httptest.NewRecorder()

	handler.SendResetPasswordLink(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "http://localhost:3000/reset-password/acc-1/tok-1", response["resetLink"])
}
