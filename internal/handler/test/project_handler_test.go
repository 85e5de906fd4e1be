package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/apperr"
	"portfolioapi/internal/models"
	"portfolioapi/internal/service"
)

func pngPart(field string) filePart {
	return filePart{
		field:       field,
		fileName:    field + ".png",
		contentType: "image/png",
		content:     []byte("png-bytes"),
	}
}

func TestCreateProject_Success(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.project.On("Create", mock.Anything,
		mock.MatchedBy(func(fields service.ProjectFields) bool {
			return fields.Name == "Portfolio" && len(fields.Technologies) == 1
		}),
		mock.MatchedBy(func(files service.ProjectFiles) bool {
			return files.Logo != nil && files.FirstPage != nil &&
				files.SecondPage != nil && files.ThirdPage != nil
		})).
		Return(&models.Project{ID: "proj-1", Name: "Portfolio"}, nil)

	req := multipartRequest(t, "/projects/showcase", map[string]string{
		"name":         "Portfolio",
		"author":       "Admin",
		"type":         "Web",
		"description":  "A personal site",
		"liveUrl":      "https://example.com",
		"repoUrl":      "https://github.com/example/portfolio",
		"technologies": "Go",
	},
		pngPart("projectLogoUrl"),
		pngPart("firstPageImageUrl"),
		pngPart("secondPageImageUrl"),
		pngPart("thirdPageImageUrl"),
	)
	rr := httptest.NewRecorder()

	handler.CreateProject(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusCreated)
	assert.Equal(t, "Successfully Uploaded!", response["message"])
	mocks.project.AssertExpectations(t)
}

func TestCreateProject_MissingSecondPageImage(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.project.On("Create", mock.Anything, mock.Anything,
		mock.MatchedBy(func(files service.ProjectFiles) bool {
			return files.SecondPage == nil
		})).
		Return(nil, apperr.BadRequest("All four project images are required."))

	req := multipartRequest(t, "/projects/showcase", map[string]string{
		"name":        "Portfolio",
		"author":      "Admin",
		"type":        "Web",
		"description": "A personal site",
	},
		pngPart("projectLogoUrl"),
		pngPart("firstPageImageUrl"),
		pngPart("thirdPageImageUrl"),
	)
	rr := httptest.NewRecorder()

	handler.CreateProject(rr, req)

	assertJSONIssue(t, rr, http.StatusBadRequest)
	mocks.project.AssertExpectations(t)
}

func TestUpdateProject_SingleSlot(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.project.On("Update", mock.Anything, "proj-1", mock.Anything,
		mock.MatchedBy(func(files service.ProjectFiles) bool {
			return files.Logo != nil && files.FirstPage == nil &&
				files.SecondPage == nil && files.ThirdPage == nil
		})).
		Return(nil)

	req := multipartRequest(t, "/projects/showcase/proj-1", map[string]string{
		"name": "Portfolio v2",
	}, pngPart("projectLogoUrl"))
	req = mux.SetURLVars(req, map[string]string{"id": "proj-1"})
	rr := httptest.NewRecorder()

	handler.UpdateProject(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "Patch successful!", response["message"])
	mocks.project.AssertExpectations(t)
}

func TestDeleteProject_UpstreamFailure(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.project.On("Delete", mock.Anything, "proj-1").
		Return(apperr.UpstreamErr("Could not remove project assets.", nil))

	req := httptest.NewRequest(http.MethodDelete, "/projects/showcase/proj-1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "proj-1"})
	rr := httptest.NewRecorder()

	handler.DeleteProject(rr, req)

	assertJSONIssue(t, rr, http.StatusInternalServerError)
}

func TestGetProjects_All(t *testing.T) {
	handler, mocks := createTestHandler()

	mocks.project.On("GetAll", mock.Anything).
		Return([]*models.Project{{ID: "proj-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/projects/showcase", nil)
	rr := httptest.NewRecorder()

	handler.GetProjects(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mocks.project.AssertExpectations(t)
}
