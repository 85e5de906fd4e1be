package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"portfolioapi/internal/service"
)

const articleFileField = "supportingImgUrl"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handlers) articleFieldsFromForm(r *http.Request) service.ArticleFields {
	return service.ArticleFields{
		Title:              r.FormValue("title"),
		AuthorName:         r.FormValue("authorName"),
		BodyHeading:        r.FormValue("bodyHeading"),
		BodyText:           r.FormValue("bodyText"),
		CodeSnippet:        r.FormValue("codeSnippet"),
		CommandLineSnippet: r.FormValue("commandLineSnippet"),
	}
}

// parseMultipart enforces the upload size limit before any file part is
// touched. Replies 400 itself and returns false on failure.
func (h *Handlers) parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			writeBadRequest(w, fmt.Sprintf("File too large (max %d MB).", h.Cfg.MaxUploadSize/(1024*1024)))
		} else {
			writeBadRequest(w, "Request must be multipart form data.")
		}
		return false
	}
	return true
}

// imagePart pulls an optional image part and rejects non-image content.
// A missing part yields (nil, true): the service decides if it is required.
func (h *Handlers) imagePart(w http.ResponseWriter, r *http.Request, field string) (*service.FileUpload, bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, true
		}
		writeBadRequest(w, "Unable to read the uploaded file.")
		return nil, false
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		file.Close()
		writeBadRequest(w, "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP.")
		return nil, false
	}

	return &service.FileUpload{
		FileName: header.Filename,
		Reader:   file,
		Size:     header.Size,
	}, true
}

func (h *Handlers) imageFromForm(w http.ResponseWriter, r *http.Request, field string) (*service.FileUpload, bool) {
	if !h.parseMultipart(w, r) {
		return nil, false
	}
	return h.imagePart(w, r, field)
}

func (h *Handlers) CreateArticle(w http.ResponseWriter, r *http.Request) {
	image, ok := h.imageFromForm(w, r, articleFileField)
	if !ok {
		return
	}

	_, err := h.ArticleService.Create(r.Context(), h.articleFieldsFromForm(r), image)
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{
		Message: "Successfully uploaded!",
		Details: "Blog has been successfully uploaded to our records.",
	})
}

func (h *Handlers) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	image, ok := h.imageFromForm(w, r, articleFileField)
	if !ok {
		return
	}

	if err := h.ArticleService.Update(r.Context(), id, h.articleFieldsFromForm(r), image); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Update Successful!",
		Details: "Blog info has been successfully updated.",
	})
}

func (h *Handlers) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ArticleService.Delete(r.Context(), id); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Successfully removed!",
		Details: "Blog has been successfully removed from our records.",
	})
}

func (h *Handlers) GetArticles(w http.ResponseWriter, r *http.Request) {
	if id, ok := mux.Vars(r)["id"]; ok {
		article, err := h.ArticleService.Get(r.Context(), id)
		if err != nil {
			h.writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, article)
		return
	}

	articles, err := h.ArticleService.GetAll(r.Context())
	if err != nil {
		h.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}
