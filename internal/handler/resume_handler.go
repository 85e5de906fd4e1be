package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"portfolioapi/internal/service"
)

const resumeFileField = "resumeUrl"

var allowedResumeTypes = map[string]bool{
	"application/pdf": true,
}

func (h *Handlers) resumePart(w http.ResponseWriter, r *http.Request) (*service.FileUpload, bool) {
	file, header, err := r.FormFile(resumeFileField)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, true
		}
		writeBadRequest(w, "Unable to read the uploaded file.")
		return nil, false
	}

	if contentType := header.Header.Get("Content-Type"); !allowedResumeTypes[contentType] {
		file.Close()
		writeBadRequest(w, "Unsupported file type. A resume must be a PDF.")
		return nil, false
	}

	return &service.FileUpload{
		FileName: header.Filename,
		Reader:   file,
		Size:     header.Size,
	}, true
}

func (h *Handlers) CreateResume(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipart(w, r) {
		return
	}

	file, ok := h.resumePart(w, r)
	if !ok {
		return
	}

	_, err := h.ResumeService.Create(r.Context(), file)
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{
		Message: "Successfully uploaded!",
		Details: "New resume has been successfully uploaded to our records.",
	})
}

func (h *Handlers) UpdateResume(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if !h.parseMultipart(w, r) {
		return
	}

	file, ok := h.resumePart(w, r)
	if !ok {
		return
	}

	if err := h.ResumeService.Update(r.Context(), id, file); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Update Successful!",
		Details: "New resume has been successfully updated.",
	})
}

func (h *Handlers) DeleteResume(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ResumeService.Delete(r.Context(), id); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Successfully Removed!",
		Details: "Resume has been successfully removed from our records.",
	})
}

func (h *Handlers) GetResumes(w http.ResponseWriter, r *http.Request) {
	if id, ok := mux.Vars(r)["id"]; ok {
		resume, err := h.ResumeService.Get(r.Context(), id)
		if err != nil {
			h.writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resume)
		return
	}

	resumes, err := h.ResumeService.GetAll(r.Context())
	if err != nil {
		h.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resumes)
}
