package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"portfolioapi/internal/service"
)

// Multipart field names for the four project asset slots.
const (
	projectLogoField      = "projectLogoUrl"
	firstPageImageField   = "firstPageImageUrl"
	secondPageImageField  = "secondPageImageUrl"
	thirdPageImageField   = "thirdPageImageUrl"
	technologiesFormField = "technologies"
)

func projectFieldsFromForm(r *http.Request) service.ProjectFields {
	return service.ProjectFields{
		Name:         r.FormValue("name"),
		Author:       r.FormValue("author"),
		Type:         r.FormValue("type"),
		Owner:        r.FormValue("owner"),
		Description:  r.FormValue("description"),
		LiveURL:      r.FormValue("liveUrl"),
		RepoURL:      r.FormValue("repoUrl"),
		Technologies: r.Form[technologiesFormField],
	}
}

func (h *Handlers) projectFilesFromForm(w http.ResponseWriter, r *http.Request) (service.ProjectFiles, bool) {
	var files service.ProjectFiles
	var ok bool

	if files.Logo, ok = h.imagePart(w, r, projectLogoField); !ok {
		return files, false
	}
	if files.FirstPage, ok = h.imagePart(w, r, firstPageImageField); !ok {
		return files, false
	}
	if files.SecondPage, ok = h.imagePart(w, r, secondPageImageField); !ok {
		return files, false
	}
	if files.ThirdPage, ok = h.imagePart(w, r, thirdPageImageField); !ok {
		return files, false
	}

	return files, true
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipart(w, r) {
		return
	}

	files, ok := h.projectFilesFromForm(w, r)
	if !ok {
		return
	}

	_, err := h.ProjectService.Create(r.Context(), projectFieldsFromForm(r), files)
	if err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{
		Message: "Successfully Uploaded!",
		Details: "Project information has been uploaded successfully.",
	})
}

func (h *Handlers) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if !h.parseMultipart(w, r) {
		return
	}

	files, ok := h.projectFilesFromForm(w, r)
	if !ok {
		return
	}

	if err := h.ProjectService.Update(r.Context(), id, projectFieldsFromForm(r), files); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Patch successful!",
		Details: "Requested resources updated successfully.",
	})
}

func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ProjectService.Delete(r.Context(), id); err != nil {
		h.writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Removed successfully!",
		Details: "Requested resources have been successfully removed.",
	})
}

func (h *Handlers) GetProjects(w http.ResponseWriter, r *http.Request) {
	if id, ok := mux.Vars(r)["id"]; ok {
		project, err := h.ProjectService.Get(r.Context(), id)
		if err != nil {
			h.writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, project)
		return
	}

	projects, err := h.ProjectService.GetAll(r.Context())
	if err != nil {
		h.writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}
