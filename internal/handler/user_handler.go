package handler

import (
	"net/http"
	"strconv"

	"pulse/internal/middleware"
	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	repo repository.UserRepositoryInterface
}

func NewUserHandler(repo repository.UserRepositoryInterface) *UserHandler {
	return &UserHandler{repo: repo}
}

type updateUserRequest struct {
	Name   string `json:"name" binding:"omitempty,min=1,max=100"`
	Role   string `json:"role" binding:"omitempty,oneof=admin project_manager team_member viewer"`
	Avatar string `json:"avatar" binding:"omitempty,url"`
	Status string `json:"status" binding:"omitempty,oneof=Active Offline Away"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	sendSuccess(c, http.StatusOK, users, "Users retrieved successfully")
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}
	if user == nil {
		sendError(c, http.StatusNotFound, "User not found")
		return
	}

	sendSuccess(c, http.StatusOK, user, "User retrieved successfully")
}

// Update modifies a profile. Non-admins may only update themselves.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	callerID := middleware.CallerID(c)
	if callerID == nil {
		sendError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if uint(id) != *callerID && middleware.CallerRole(c) != model.RoleAdmin {
		sendError(c, http.StatusForbidden, "Forbidden: You can only update your own profile")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	user, err := h.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}
	if user == nil {
		sendError(c, http.StatusNotFound, "User not found")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
		user.Initials = model.Initials(req.Name)
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Status != "" {
		user.Status = req.Status
	}

	if err := h.repo.Update(c.Request.Context(), user); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	sendSuccess(c, http.StatusOK, user, "User updated successfully")
}

// Delete removes a user. Admin-only; self-deletion is rejected.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	callerID := middleware.CallerID(c)
	if callerID != nil && uint(id) == *callerID {
		sendError(c, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(id)); err != nil {
		if err == repository.ErrUserNotFound {
			sendError(c, http.StatusNotFound, "User not found")
		} else {
			sendError(c, http.StatusInternalServerError, "Failed to delete user")
		}
		return
	}

	sendSuccess(c, http.StatusOK, nil, "User deleted successfully")
}
