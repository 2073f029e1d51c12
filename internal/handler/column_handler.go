package handler

import (
	"net/http"
	"strconv"

	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ColumnHandler struct {
	columnRepo  repository.ColumnRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
}

func NewColumnHandler(columnRepo repository.ColumnRepositoryInterface, projectRepo repository.ProjectRepositoryInterface) *ColumnHandler {
	return &ColumnHandler{columnRepo: columnRepo, projectRepo: projectRepo}
}

type createColumnRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=100"`
	Color     string `json:"color" binding:"omitempty,hexcolor"`
	ProjectID *uint  `json:"projectId"`
	Order     *int   `json:"order"`
}

type updateColumnRequest struct {
	Title string `json:"title" binding:"omitempty,min=1,max=100"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
	Order *int   `json:"order"`
}

// columnResponse adds the task count the board header displays.
type columnResponse struct {
	model.Column
	TaskCount int `json:"taskCount"`
}

func formatColumn(col *model.Column) columnResponse {
	return columnResponse{Column: *col, TaskCount: len(col.Tasks)}
}

type columnOrderRequest struct {
	ID    string `json:"id" binding:"required,uuid"`
	Order int    `json:"order"`
}

type reorderColumnsRequest struct {
	Columns []columnOrderRequest `json:"columns" binding:"required,min=1,dive"`
}

func (h *ColumnHandler) List(c *gin.Context) {
	var projectID *uint
	if raw := c.Query("projectId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid project ID")
			return
		}
		pid := uint(id)
		projectID = &pid
	}

	columns, err := h.columnRepo.List(c.Request.Context(), projectID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve columns")
		return
	}

	formatted := make([]columnResponse, len(columns))
	for i := range columns {
		formatted[i] = formatColumn(&columns[i])
	}

	sendSuccess(c, http.StatusOK, formatted, "Columns retrieved successfully")
}

func (h *ColumnHandler) GetByID(c *gin.Context) {
	columnID, err := uuid.Parse(c.Param("id"))
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

	sendSuccess(c, http.StatusOK, formatColumn(column), "Column retrieved successfully")
}

// Create adds a column; without an explicit order it goes to the right end
// of the project's board.
func (h *ColumnHandler) Create(c *gin.Context) {
	var req createColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
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

	order := 0
	if req.Order != nil {
		order = *req.Order
	} else if req.ProjectID != nil {
		maxOrder, err := h.columnRepo.MaxOrder(c.Request.Context(), *req.ProjectID)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to determine column order")
			return
		}
		order = maxOrder + 1
	}

	color := req.Color
	if color == "" {
		color = model.DefaultColor
	}

	column := &model.Column{
		Title:     req.Title,
		Color:     color,
		Order:     order,
		ProjectID: req.ProjectID,
	}

	if err := h.columnRepo.Create(c.Request.Context(), column); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create column")
		return
	}

	sendSuccess(c, http.StatusCreated, column, "Column created successfully")
}

func (h *ColumnHandler) Update(c *gin.Context) {
	columnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid column ID format")
		return
	}

	var req updateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
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

	if req.Title != "" {
		column.Title = req.Title
	}
	if req.Color != "" {
		column.Color = req.Color
	}
	if req.Order != nil {
		column.Order = *req.Order
	}

	if err := h.columnRepo.Update(c.Request.Context(), column); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to update column")
		return
	}

	sendSuccess(c, http.StatusOK, column, "Column updated successfully")
}

// Reorder applies a whole new left-to-right layout atomically.
func (h *ColumnHandler) Reorder(c *gin.Context) {
	var req reorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	orders := make([]repository.ColumnOrder, len(req.Columns))
	ids := make([]uuid.UUID, len(req.Columns))
	for i, col := range req.Columns {
		columnID, err := uuid.Parse(col.ID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid column ID format")
			return
		}
		orders[i] = repository.ColumnOrder{ID: columnID, Order: col.Order}
		ids[i] = columnID
	}

	if err := h.columnRepo.Reorder(c.Request.Context(), orders); err != nil {
		if err == repository.ErrColumnNotFound {
			sendError(c, http.StatusNotFound, "Column not found")
		} else {
			sendError(c, http.StatusInternalServerError, "Failed to reorder columns")
		}
		return
	}

	columns, err := h.columnRepo.GetByIDs(c.Request.Context(), ids)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve reordered columns")
		return
	}

	sendSuccess(c, http.StatusOK, columns, "Columns reordered successfully")
}

// Delete refuses to remove a column that still holds tasks.
func (h *ColumnHandler) Delete(c *gin.Context) {
	columnID, err := uuid.Parse(c.Param("id"))
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

	taskCount, err := h.columnRepo.CountTasks(c.Request.Context(), columnID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to count column tasks")
		return
	}
	if taskCount > 0 {
		sendError(c, http.StatusBadRequest, "Cannot delete column with tasks. Please move or delete tasks first.")
		return
	}

	if err := h.columnRepo.Delete(c.Request.Context(), columnID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete column")
		return
	}

	sendSuccess(c, http.StatusOK, nil, "Column deleted successfully")
}
