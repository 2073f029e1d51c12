package handler

import (
	"net/http"
	"strconv"

	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ActivityHandler struct {
	repo repository.ActivityRepositoryInterface
}

func NewActivityHandler(repo repository.ActivityRepositoryInterface) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

type pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type activityPage struct {
	Activities []model.Activity `json:"activities"`
	Pagination pagination       `json:"pagination"`
}

// queryInt ignores negative values: gorm reads Limit(-1) as "no limit".
func queryInt(c *gin.Context, name string, defaultVal int) int {
	if raw := c.Query(name); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			return n
		}
	}
	return defaultVal
}

func (h *ActivityHandler) List(c *gin.Context) {
	filter := repository.ActivityFilter{
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	}

	if raw := c.Query("projectId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid project ID")
			return
		}
		pid := uint(id)
		filter.ProjectID = &pid
	}
	if raw := c.Query("taskId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid task ID format")
			return
		}
		filter.TaskID = &id
	}
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid user ID")
			return
		}
		uid := uint(id)
		filter.UserID = &uid
	}
	if raw := c.Query("type"); raw != "" {
		filter.Type = &raw
	}

	activities, total, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve activities")
		return
	}

	sendSuccess(c, http.StatusOK, activityPage{
		Activities: activities,
		Pagination: pagination{
			Total:   total,
			Limit:   filter.Limit,
			Offset:  filter.Offset,
			HasMore: int64(filter.Offset+filter.Limit) < total,
		},
	}, "Activities retrieved successfully")
}

func (h *ActivityHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	activity, err := h.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if err == repository.ErrActivityNotFound {
			sendError(c, http.StatusNotFound, "Activity not found")
		} else {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve activity")
		}
		return
	}

	sendSuccess(c, http.StatusOK, activity, "Activity retrieved successfully")
}

func (h *ActivityHandler) ListByProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("projectId"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}
	pid := uint(id)

	filter := repository.ActivityFilter{
		ProjectID: &pid,
		Limit:     queryInt(c, "limit", 50),
		Offset:    queryInt(c, "offset", 0),
	}

	activities, total, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve activities")
		return
	}

	sendSuccess(c, http.StatusOK, activityPage{
		Activities: activities,
		Pagination: pagination{
			Total:   total,
			Limit:   filter.Limit,
			Offset:  filter.Offset,
			HasMore: int64(filter.Offset+filter.Limit) < total,
		},
	}, "Project activities retrieved successfully")
}

// RecentFeed backs the dashboard's activity panel.
func (h *ActivityHandler) RecentFeed(c *gin.Context) {
	limit := queryInt(c, "limit", 20)

	activities, err := h.repo.Recent(c.Request.Context(), limit)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve recent activities")
		return
	}

	sendSuccess(c, http.StatusOK, activities, "Recent activities retrieved successfully")
}
