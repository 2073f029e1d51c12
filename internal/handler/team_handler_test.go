package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/internal/handler"
	"pulse/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupTeamTest() (*gin.Engine, *MockTeamMemberRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockRepo := new(MockTeamMemberRepository)
	teamHandler := handler.NewTeamHandler(mockRepo)

	r.POST("/team", teamHandler.Create)
	r.PATCH("/team/:id", teamHandler.Update)

	return r, mockRepo
}

func TestCreateTeamMember_DerivesInitials(t *testing.T) {
	// Arrange
	router, mockRepo := setupTeamTest()

	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(member *model.TeamMember) bool {
		return member.Initials == "JD" && member.Avatar == "bg-slate-900" && member.Status == model.StatusActive
	})).Return(nil)

	reqBody := map[string]string{
		"name":  "Jane Doe",
		"role":  "Designer",
		"email": "jane@example.com",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/team", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreateTeamMember_DuplicateEmail(t *testing.T) {
	// Arrange
	router, mockRepo := setupTeamTest()

	existing := &model.TeamMember{
		ID:    1,
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(existing, nil)

	reqBody := map[string]string{
		"name":  "Jane Impostor",
		"role":  "Designer",
		"email": "Jane@Example.com",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/team", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusConflict, resp.Code)

	var response handler.Response
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Team member with this email already exists", response.Error)

	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateTeamMember_DuplicateInsert(t *testing.T) {
	// Arrange: the pre-check passes but the unique index rejects the
	// insert, a concurrent create got there first.
	router, mockRepo := setupTeamTest()

	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.TeamMember")).
		Return(gorm.ErrDuplicatedKey)

	reqBody := map[string]string{
		"name":  "Jane Doe",
		"role":  "Designer",
		"email": "jane@example.com",
	}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/team", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusConflict, resp.Code)

	var response handler.Response
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Team member with this email already exists", response.Error)

	mockRepo.AssertExpectations(t)
}

func TestUpdateTeamMember_EmailChangeChecked(t *testing.T) {
	// Arrange
	router, mockRepo := setupTeamTest()

	member := &model.TeamMember{
		ID:    2,
		Name:  "Sam Lee",
		Email: "sam@example.com",
	}
	taken := &model.TeamMember{
		ID:    3,
		Email: "taken@example.com",
	}
	mockRepo.On("GetByID", mock.Anything, uint(2)).Return(member, nil)
	mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(taken, nil)

	reqBody := map[string]string{"email": "taken@example.com"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("PATCH", "/team/2", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusConflict, resp.Code)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestUpdateTeamMember_NameRefreshesInitials(t *testing.T) {
	// Arrange
	router, mockRepo := setupTeamTest()

	member := &model.TeamMember{
		ID:       2,
		Name:     "Sam Lee",
		Initials: "SL",
		Email:    "sam@example.com",
	}
	mockRepo.On("GetByID", mock.Anything, uint(2)).Return(member, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *model.TeamMember) bool {
		return m.Name == "Samantha Lee" && m.Initials == "SL"
	})).Return(nil)

	reqBody := map[string]string{"name": "Samantha Lee"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("PATCH", "/team/2", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	mockRepo.AssertExpectations(t)
}
