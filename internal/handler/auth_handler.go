package handler

import (
	"errors"
	"net/http"
	"strings"

	"pulse/internal/auth"
	"pulse/internal/middleware"
	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	repo       repository.UserRepositoryInterface
	tokens     *auth.TokenManager
	bcryptCost int
}

func NewAuthHandler(repo repository.UserRepositoryInterface, tokens *auth.TokenManager, bcryptCost int) *AuthHandler {
	return &AuthHandler{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin project_manager team_member viewer"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user and returns it with a signed token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	req.Email = strings.ToLower(req.Email)

	existing, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to check existing users")
		return
	}
	if existing != nil {
		sendError(c, http.StatusConflict, "User with this email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	role := req.Role
	if role == "" {
		role = model.RoleTeamMember
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     role,
		Initials: model.Initials(req.Name),
		Status:   model.StatusActive,
	}

	// The unique index is the authority; the FindByEmail pre-check can lose
	// a race with a concurrent registration.
	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sendError(c, http.StatusConflict, "User with this email already exists")
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	sendSuccess(c, http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	}, "User registered successfully")
}

// Login verifies credentials and returns the user with a signed token.
// Unknown email and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	req.Email = strings.ToLower(req.Email)

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to look up user")
		return
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		sendError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	}, "Login successful")
}

// Me returns the authenticated caller's user row.
func (h *AuthHandler) Me(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == nil {
		sendError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.repo.GetByID(c.Request.Context(), *callerID)
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
