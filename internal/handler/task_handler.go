package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"pulse/internal/activity"
	"pulse/internal/board"
	"pulse/internal/middleware"
	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskRepo    repository.TaskRepositoryInterface
	columnRepo  repository.ColumnRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	maintainer  board.ProgressRefresher
	recorder    activity.RecorderInterface
}

func NewTaskHandler(
	taskRepo repository.TaskRepositoryInterface,
	columnRepo repository.ColumnRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	maintainer board.ProgressRefresher,
	recorder activity.RecorderInterface,
) *TaskHandler {
	return &TaskHandler{
		taskRepo:    taskRepo,
		columnRepo:  columnRepo,
		projectRepo: projectRepo,
		maintainer:  maintainer,
		recorder:    recorder,
	}
}

type createTaskRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=200"`
	Description  string `json:"description" binding:"omitempty,max=1000"`
	Priority     string `json:"priority" binding:"omitempty,oneof=low medium high"`
	ColumnID     string `json:"columnId" binding:"required,uuid"`
	ProjectID    *uint  `json:"projectId"`
	AssignedToID *uint  `json:"assignedToId"`
}

type updateTaskRequest struct {
	Title        string          `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string         `json:"description" binding:"omitempty,max=1000"`
	Priority     string          `json:"priority" binding:"omitempty,oneof=low medium high"`
	ColumnID     string          `json:"columnId" binding:"omitempty,uuid"`
	ProjectID    *uint           `json:"projectId"`
	AssignedToID json.RawMessage `json:"assignedToId"`
	Completed    *bool           `json:"completed"`
}

// moveTaskRequest carries an optional order the board UI sends along; tasks
// are rendered by creation time, so it is accepted and ignored.
type moveTaskRequest struct {
	ColumnID string `json:"columnId" binding:"required,uuid"`
	Order    *int   `json:"order"`
}

func (h *TaskHandler) List(c *gin.Context) {
	var filter repository.TaskFilter

	if raw := c.Query("projectId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid project ID")
			return
		}
		pid := uint(id)
		filter.ProjectID = &pid
	}
	if raw := c.Query("columnId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid column ID format")
			return
		}
		filter.ColumnID = &id
	}
	if raw := c.Query("assignedToId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid assignee ID")
			return
		}
		aid := uint(id)
		filter.AssignedToID = &aid
	}

	tasks, err := h.taskRepo.List(c.Request.Context(), filter)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	sendSuccess(c, http.StatusOK, tasks, "Tasks retrieved successfully")
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if err == repository.ErrTaskNotFound {
			sendError(c, http.StatusNotFound, "Task not found")
		} else {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve task")
		}
		return
	}

	sendSuccess(c, http.StatusOK, task, "Task retrieved successfully")
}

// Create stores the task, refreshes the owning project's progress and
// records the activity.
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	columnID, err := uuid.Parse(req.ColumnID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid column ID format")
		return
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve column")
		return
	}
	if column == nil {
		sendError(c, http.StatusNotFound, "Column not found")
		return
	}

	if req.ProjectID != nil {
		project, err := h.projectRepo.GetBare(c.Request.Context(), *req.ProjectID)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve project")
			return
		}
		if project == nil {
			sendError(c, http.StatusNotFound, "Project not found")
			return
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	task := &model.Task{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     priority,
		ColumnID:     columnID,
		ProjectID:    req.ProjectID,
		AssignedToID: req.AssignedToID,
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create task")
		return
	}

	if err := h.maintainer.RefreshProgress(c.Request.Context(), task.ProjectID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to refresh project progress")
		return
	}

	h.recorder.TaskCreated(c.Request.Context(), middleware.CallerID(c), task.ProjectID, task.ID, task.Title)

	created, err := h.taskRepo.GetByID(c.Request.Context(), task.ID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve created task")
		return
	}

	sendSuccess(c, http.StatusCreated, created, "Task created successfully")
}

// Update applies a partial update. Any change may shift the owning
// project's completion ratio, so progress is always refreshed afterwards.
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if err == repository.ErrTaskNotFound {
			sendError(c, http.StatusNotFound, "Task not found")
		} else {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve task")
		}
		return
	}

	prevProjectID := task.ProjectID

	if req.ColumnID != "" {
		columnID, err := uuid.Parse(req.ColumnID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid column ID format")
			return
		}
		column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve column")
			return
		}
		if column == nil {
			sendError(c, http.StatusNotFound, "Column not found")
			return
		}
		task.ColumnID = columnID
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.ProjectID != nil {
		task.ProjectID = req.ProjectID
	}
	if len(req.AssignedToID) > 0 {
		assignee, ok := parseNullableID(req.AssignedToID)
		if !ok {
			sendError(c, http.StatusBadRequest, "Invalid assignee ID")
			return
		}
		task.AssignedToID = assignee
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to update task")
		return
	}

	if err := h.maintainer.RefreshProgress(c.Request.Context(), task.ProjectID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to refresh project progress")
		return
	}

	// Reassigning the task shifts the former project's completion ratio too.
	if prevProjectID != nil && (task.ProjectID == nil || *task.ProjectID != *prevProjectID) {
		if err := h.maintainer.RefreshProgress(c.Request.Context(), prevProjectID); err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to refresh project progress")
			return
		}
	}

	callerID := middleware.CallerID(c)
	if req.Completed != nil && *req.Completed {
		h.recorder.TaskCompleted(c.Request.Context(), callerID, task.ProjectID, task.ID, task.Title)
	} else {
		h.recorder.TaskUpdated(c.Request.Context(), callerID, task.ProjectID, task.ID, task.Title)
	}

	updated, err := h.taskRepo.GetByID(c.Request.Context(), task.ID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve updated task")
		return
	}

	sendSuccess(c, http.StatusOK, updated, "Task updated successfully")
}

// Move changes only the task's column. Completion is untouched, so the
// project's progress is not refreshed.
func (h *TaskHandler) Move(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var req moveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if err == repository.ErrTaskNotFound {
			sendError(c, http.StatusNotFound, "Task not found")
		} else {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve task")
		}
		return
	}

	columnID, err := uuid.Parse(req.ColumnID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid column ID format")
		return
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve column")
		return
	}
	if column == nil {
		sendError(c, http.StatusNotFound, "Column not found")
		return
	}

	task.ColumnID = columnID
	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to move task")
		return
	}

	h.recorder.TaskMoved(c.Request.Context(), middleware.CallerID(c), task.ProjectID, task.ID, task.Title, column.Title)

	moved, err := h.taskRepo.GetByID(c.Request.Context(), task.ID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve moved task")
		return
	}

	sendSuccess(c, http.StatusOK, moved, "Task moved successfully")
}

// Delete removes the task and refreshes the former project's progress.
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if err == repository.ErrTaskNotFound {
			sendError(c, http.StatusNotFound, "Task not found")
		} else {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve task")
		}
		return
	}

	projectID := task.ProjectID

	if err := h.taskRepo.Delete(c.Request.Context(), taskID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	if err := h.maintainer.RefreshProgress(c.Request.Context(), projectID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to refresh project progress")
		return
	}

	sendSuccess(c, http.StatusOK, nil, "Task deleted successfully")
}

// parseNullableID handles the three states of assignedToId in a PATCH:
// absent (len 0, caller keeps assignment), JSON null (unassign) and a
// numeric ID.
func parseNullableID(raw json.RawMessage) (*uint, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "null" {
		return nil, true
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, false
	}
	id := uint(n)
	return &id, true
}
