package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/internal/handler"
	"pulse/internal/middleware"
	"pulse/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type projectTestEnv struct {
	router      *gin.Engine
	projectRepo *MockProjectRepository
	columnRepo  *MockColumnRepository
	maintainer  *MockMaintainer
	recorder    *MockRecorder
}

// setupProjectTest wires the handler behind a fake authenticated caller.
func setupProjectTest(callerID uint, callerRole string) projectTestEnv {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	env := projectTestEnv{
		router:      r,
		projectRepo: new(MockProjectRepository),
		columnRepo:  new(MockColumnRepository),
		maintainer:  new(MockMaintainer),
		recorder:    new(MockRecorder),
	}

	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, callerID)
		c.Set(middleware.UserRoleKey, callerRole)
		c.Next()
	})

	projectHandler := handler.NewProjectHandler(env.projectRepo, env.columnRepo, env.maintainer, env.recorder)

	r.POST("/projects", projectHandler.Create)
	r.PATCH("/projects/:id", projectHandler.Update)
	r.DELETE("/projects/:id", projectHandler.Delete)

	return env
}

func TestCreateProject_SeedsDefaultBoard(t *testing.T) {
	// Arrange
	env := setupProjectTest(5, model.RoleTeamMember)

	callerID := uint(5)
	env.projectRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
		return p.Name == "Website" && p.Status == model.ProjectStarted &&
			p.Progress == 0 && p.OwnerID != nil && *p.OwnerID == callerID
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Project).ID = 7
	}).Return(nil)
	env.columnRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(columns []model.Column) bool {
		return len(columns) == 4 && columns[0].Title == "To Do" && columns[3].Title == "Done"
	})).Return(nil)
	env.recorder.On("ProjectCreated", mock.Anything, &callerID, uint(7), "Website").Return()
	env.projectRepo.On("GetByID", mock.Anything, uint(7)).
		Return(&model.Project{ID: 7, Name: "Website", Status: model.ProjectStarted, OwnerID: &callerID}, nil)

	reqBody := map[string]string{"name": "Website"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/projects", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	var response handler.Response
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response.Data.(map[string]interface{})
	assert.Equal(t, "Website", data["name"])

	tasks := data["tasks"].(map[string]interface{})
	assert.Equal(t, float64(0), tasks["total"])

	env.projectRepo.AssertExpectations(t)
	env.columnRepo.AssertExpectations(t)
	env.recorder.AssertExpectations(t)
}

func TestUpdateProject_RecomputesProgressWhenNotExplicit(t *testing.T) {
	// Arrange
	env := setupProjectTest(5, model.RoleTeamMember)

	projectID := uint(3)
	env.projectRepo.On("GetBare", mock.Anything, projectID).
		Return(&model.Project{ID: projectID, Name: "Website"}, nil)
	env.projectRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)
	env.maintainer.On("RefreshProgress", mock.Anything, &projectID).Return(nil)
	env.recorder.On("ProjectUpdated", mock.Anything, mock.Anything, projectID, "Redesign").Return()
	env.projectRepo.On("GetByID", mock.Anything, projectID).
		Return(&model.Project{ID: projectID, Name: "Redesign"}, nil)

	reqBody := map[string]string{"name": "Redesign"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("PATCH", "/projects/3", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	env.maintainer.AssertExpectations(t)
	env.recorder.AssertExpectations(t)
}

func TestUpdateProject_ExplicitProgressSkipsMaintainer(t *testing.T) {
	// Arrange
	env := setupProjectTest(5, model.RoleTeamMember)

	projectID := uint(3)
	env.projectRepo.On("GetBare", mock.Anything, projectID).
		Return(&model.Project{ID: projectID, Name: "Website"}, nil)
	env.projectRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
		return p.Progress == 80
	})).Return(nil)
	env.recorder.On("ProjectUpdated", mock.Anything, mock.Anything, projectID, "Website").Return()
	env.projectRepo.On("GetByID", mock.Anything, projectID).
		Return(&model.Project{ID: projectID, Name: "Website", Progress: 80}, nil)

	reqBody := map[string]interface{}{"progress": 80}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("PATCH", "/projects/3", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	env.maintainer.AssertNotCalled(t, "RefreshProgress")
	env.projectRepo.AssertExpectations(t)
}

func TestDeleteProject_NonOwnerForbidden(t *testing.T) {
	// Arrange
	env := setupProjectTest(5, model.RoleTeamMember)

	ownerID := uint(99)
	env.projectRepo.On("GetBare", mock.Anything, uint(3)).
		Return(&model.Project{ID: 3, Name: "Website", OwnerID: &ownerID}, nil)

	req, _ := http.NewRequest("DELETE", "/projects/3", nil)

	// Act
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)

	var response handler.Response
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Forbidden: Only project owner or admin can delete project", response.Error)

	env.projectRepo.AssertNotCalled(t, "Delete")
}

func TestDeleteProject_AdminOverridesOwnership(t *testing.T) {
	// Arrange
	env := setupProjectTest(5, model.RoleAdmin)

	ownerID := uint(99)
	env.projectRepo.On("GetBare", mock.Anything, uint(3)).
		Return(&model.Project{ID: 3, Name: "Website", OwnerID: &ownerID}, nil)
	env.projectRepo.On("Delete", mock.Anything, uint(3)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/projects/3", nil)

	// Act
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	env.projectRepo.AssertExpectations(t)
}
