package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"portfolioapi/internal/service"
)

type ContactRequest struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	Message  string `json:"message" validate:"required"`
}

type ContactResponseRequest struct {
	Subject   string `json:"subject" validate:"required"`
	EmailBody string `json:"emailBody" validate:"required"`
}

func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body.")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeBadRequest(w, "Required fields are missing or invalid.")
		return
	}

	_, err := h.ContactService.Submit(r.Context(), service.ContactFields{
		UserName: req.UserName,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
	})
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{
		Message: "Successfully uploaded!",
		Details: "Your message has been successfully uploaded.",
	})
}

func (h *Handlers) GetContacts(w http.ResponseWriter, r *http.Request) {
	if id, ok := mux.Vars(r)["id"]; ok {
		contact, err := h.ContactService.Get(r.Context(), id)
		if err != nil {
			h.writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, contact)
		return
	}

	contacts, err := h.ContactService.GetAll(r.Context())
	if err != nil {
		h.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *Handlers) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ContactService.Delete(r.Context(), id); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Successfully removed!",
		Details: "Contact submission has been removed from our records.",
	})
}

func (h *Handlers) SendContactResponse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ContactResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body.")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeBadRequest(w, "Subject and email body are required.")
		return
	}

	if err := h.ContactService.SendResponse(r.Context(), id, req.Subject, req.EmailBody); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":      "Response sent!",
		"notification": "Your reply has been emailed to the applicant.",
	})
}
