package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamHandler struct {
	repo repository.TeamMemberRepositoryInterface
}

func NewTeamHandler(repo repository.TeamMemberRepositoryInterface) *TeamHandler {
	return &TeamHandler{repo: repo}
}

type createTeamMemberRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Role     string `json:"role" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Initials string `json:"initials" binding:"omitempty,min=1,max=5"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status" binding:"omitempty,oneof=Active Offline Away"`
}

type updateTeamMemberRequest struct {
	Name           string `json:"name" binding:"omitempty,min=1,max=100"`
	Role           string `json:"role" binding:"omitempty,min=1,max=100"`
	Email          string `json:"email" binding:"omitempty,email"`
	Initials       string `json:"initials" binding:"omitempty,min=1,max=5"`
	Avatar         string `json:"avatar"`
	Status         string `json:"status" binding:"omitempty,oneof=Active Offline Away"`
	TasksCompleted *int   `json:"tasksCompleted" binding:"omitempty,min=0"`
}

func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.repo.List(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve team members")
		return
	}
	sendSuccess(c, http.StatusOK, members, "Team members retrieved successfully")
}

func (h *TeamHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid team member ID")
		return
	}

	member, err := h.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve team member")
		return
	}
	if member == nil {
		sendError(c, http.StatusNotFound, "Team member not found")
		return
	}

	sendSuccess(c, http.StatusOK, member, "Team member retrieved successfully")
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req createTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	req.Email = strings.ToLower(req.Email)

	existing, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to check existing team members")
		return
	}
	if existing != nil {
		sendError(c, http.StatusConflict, "Team member with this email already exists")
		return
	}

	initials := req.Initials
	if initials == "" {
		initials = model.Initials(req.Name)
	}
	avatar := req.Avatar
	if avatar == "" {
		avatar = "bg-slate-900"
	}
	status := req.Status
	if status == "" {
		status = model.StatusActive
	}

	member := &model.TeamMember{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Initials: initials,
		Avatar:   avatar,
		Status:   status,
	}

	if err := h.repo.Create(c.Request.Context(), member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sendError(c, http.StatusConflict, "Team member with this email already exists")
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to create team member")
		return
	}

	sendSuccess(c, http.StatusCreated, member, "Team member created successfully")
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid team member ID")
		return
	}

	var req updateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	member, err := h.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve team member")
		return
	}
	if member == nil {
		sendError(c, http.StatusNotFound, "Team member not found")
		return
	}

	if req.Email != "" {
		req.Email = strings.ToLower(req.Email)
		if req.Email != member.Email {
			existing, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
			if err != nil {
				sendError(c, http.StatusInternalServerError, "Failed to check existing team members")
				return
			}
			if existing != nil {
				sendError(c, http.StatusConflict, "Team member with this email already exists")
				return
			}
		}
		member.Email = req.Email
	}

	if req.Name != "" {
		member.Name = req.Name
		member.Initials = model.Initials(req.Name)
	}
	if req.Role != "" {
		member.Role = req.Role
	}
	if req.Initials != "" && req.Name == "" {
		member.Initials = req.Initials
	}
	if req.Avatar != "" {
		member.Avatar = req.Avatar
	}
	if req.Status != "" {
		member.Status = req.Status
	}
	if req.TasksCompleted != nil {
		member.TasksCompleted = *req.TasksCompleted
	}

	if err := h.repo.Update(c.Request.Context(), member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sendError(c, http.StatusConflict, "Team member with this email already exists")
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to update team member")
		return
	}

	sendSuccess(c, http.StatusOK, member, "Team member updated successfully")
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid team member ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(id)); err != nil {
		if err == repository.ErrTeamMemberNotFound {
			sendError(c, http.StatusNotFound, "Team member not found")
		} else {
			sendError(c, http.StatusInternalServerError, "Failed to delete team member")
		}
		return
	}

	sendSuccess(c, http.StatusOK, nil, "Team member deleted successfully")
}
