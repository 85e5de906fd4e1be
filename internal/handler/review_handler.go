package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"portfolioapi/internal/service"
)

type ReviewRequest struct {
	UserName     string  `json:"userName" validate:"required"`
	Organization string  `json:"organization" validate:"required"`
	Gender       string  `json:"gender" validate:"required"`
	Content      string  `json:"content" validate:"required"`
	Ratings      []int64 `json:"ratings" validate:"required,min=1,max=5"`
}

func (h *Handlers) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body.")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeBadRequest(w, "Required fields are missing or invalid.")
		return
	}

	_, err := h.ReviewService.Submit(r.Context(), service.ReviewFields{
		UserName:     req.UserName,
		Organization: req.Organization,
		Gender:       req.Gender,
		Content:      req.Content,
		Ratings:      req.Ratings,
	})
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{
		Message: "Thanks for your valuable review!",
		Details: "Your review has been recorded.",
	})
}

func (h *Handlers) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.ReviewService.GetAll(r.Context())
	if err != nil {
		h.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handlers) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ReviewService.Delete(r.Context(), id); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Successfully removed!",
		Details: "Review has been removed from our records.",
	})
}
