package handler

import (
	"net/http"
	"strconv"
	"time"

	"pulse/internal/activity"
	"pulse/internal/board"
	"pulse/internal/middleware"
	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectRepo repository.ProjectRepositoryInterface
	columnRepo  repository.ColumnRepositoryInterface
	maintainer  board.ProgressRefresher
	recorder    activity.RecorderInterface
}

func NewProjectHandler(
	projectRepo repository.ProjectRepositoryInterface,
	columnRepo repository.ColumnRepositoryInterface,
	maintainer board.ProgressRefresher,
	recorder activity.RecorderInterface,
) *ProjectHandler {
	return &ProjectHandler{
		projectRepo: projectRepo,
		columnRepo:  columnRepo,
		maintainer:  maintainer,
		recorder:    recorder,
	}
}

type createProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	DueDate     string `json:"dueDate"`
	OwnerID     *uint  `json:"ownerId"`
}

type updateProjectRequest struct {
	Name        string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Progress    *int    `json:"progress" binding:"omitempty,min=0,max=100"`
	Status      string  `json:"status" binding:"omitempty,oneof=Started 'In progress' 'On track' 'Almost done' Completed"`
	DueDate     *string `json:"dueDate"`
	OwnerID     *uint   `json:"ownerId"`
}

type taskCounts struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// projectResponse replaces the raw task list with a completion summary,
// which is all the dashboard consumes.
type projectResponse struct {
	model.Project
	Tasks taskCounts `json:"tasks"`
}

func formatProject(p *model.Project) projectResponse {
	completed := 0
	for _, t := range p.Tasks {
		if t.Completed {
			completed++
		}
	}
	return projectResponse{
		Project: *p,
		Tasks:   taskCounts{Completed: completed, Total: len(p.Tasks)},
	}
}

func parseDueDate(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectRepo.List(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}

	formatted := make([]projectResponse, len(projects))
	for i := range projects {
		formatted[i] = formatProject(&projects[i])
	}

	sendSuccess(c, http.StatusOK, formatted, "Projects retrieved successfully")
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projectRepo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve project")
		return
	}
	if project == nil {
		sendError(c, http.StatusNotFound, "Project not found")
		return
	}

	sendSuccess(c, http.StatusOK, formatProject(project), "Project retrieved successfully")
}

// Create stores the project with a default board of four columns.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	dueDate, ok := parseDueDate(req.DueDate)
	if !ok {
		sendError(c, http.StatusBadRequest, "Invalid date format")
		return
	}

	ownerID := req.OwnerID
	if ownerID == nil {
		ownerID = middleware.CallerID(c)
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		Progress:    0,
		Status:      model.ProjectStarted,
		DueDate:     dueDate,
		OwnerID:     ownerID,
	}

	if err := h.projectRepo.Create(c.Request.Context(), project); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	if err := h.columnRepo.CreateBatch(c.Request.Context(), model.DefaultColumns(project.ID)); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create default columns")
		return
	}

	h.recorder.ProjectCreated(c.Request.Context(), middleware.CallerID(c), project.ID, project.Name)

	created, err := h.projectRepo.GetByID(c.Request.Context(), project.ID)
	if err != nil || created == nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve created project")
		return
	}

	sendSuccess(c, http.StatusCreated, formatProject(created), "Project created successfully")
}

// Update applies the requested fields. When the client does not send an
// explicit progress value the maintainer recomputes it from the task set.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	project, err := h.projectRepo.GetBare(c.Request.Context(), uint(id))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve project")
		return
	}
	if project == nil {
		sendError(c, http.StatusNotFound, "Project not found")
		return
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != "" {
		project.Status = req.Status
	}
	if req.OwnerID != nil {
		project.OwnerID = req.OwnerID
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}
	if req.DueDate != nil {
		dueDate, ok := parseDueDate(*req.DueDate)
		if !ok {
			sendError(c, http.StatusBadRequest, "Invalid date format")
			return
		}
		project.DueDate = dueDate
	}

	if err := h.projectRepo.Update(c.Request.Context(), project); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to update project")
		return
	}

	if req.Progress == nil {
		projectID := uint(id)
		if err := h.maintainer.RefreshProgress(c.Request.Context(), &projectID); err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to refresh project progress")
			return
		}
	}

	h.recorder.ProjectUpdated(c.Request.Context(), middleware.CallerID(c), project.ID, project.Name)

	updated, err := h.projectRepo.GetByID(c.Request.Context(), project.ID)
	if err != nil || updated == nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve updated project")
		return
	}

	sendSuccess(c, http.StatusOK, formatProject(updated), "Project updated successfully")
}

// Delete removes a project; only the owner or an admin may do it.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projectRepo.GetBare(c.Request.Context(), uint(id))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve project")
		return
	}
	if project == nil {
		sendError(c, http.StatusNotFound, "Project not found")
		return
	}

	callerID := middleware.CallerID(c)
	isOwner := project.OwnerID != nil && callerID != nil && *project.OwnerID == *callerID
	if !isOwner && middleware.CallerRole(c) != model.RoleAdmin {
		sendError(c, http.StatusForbidden, "Forbidden: Only project owner or admin can delete project")
		return
	}

	if err := h.projectRepo.Delete(c.Request.Context(), uint(id)); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	sendSuccess(c, http.StatusOK, nil, "Project deleted successfully")
}
