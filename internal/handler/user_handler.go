package handler

import (
	"net/http"

	"github.com/Toglefritz/Launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler interface {
	CreateUser(c *gin.Context)
	GetCurrentProjects(c *gin.Context)
	GetAchievements(c *gin.Context)
	GetProfilePicture(c *gin.Context)
	SetProfilePicture(c *gin.Context)
}

type userHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) UserHandler {
	return &userHandler{
		service: service,
	}
}

type createUserRequest struct {
	UserID string `json:"userId"`
}

// CreateUser is the hook the authentication layer calls when a new identity
// appears. Repeated calls for the same identity are harmless.
func (h *userHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	created, err := h.service.EnsureUser(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"userId": req.UserID})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": req.UserID})
}

func (h *userHandler) GetCurrentProjects(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	projects, err := h.service.ListCurrentProjects(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(projects) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *userHandler) GetAchievements(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	achievements, err := h.service.ListAchievements(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(achievements) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, achievements)
}

func (h *userHandler) GetProfilePicture(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	picture, err := h.service.GetProfilePicture(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profilePicture": picture})
}

type setProfilePictureRequest struct {
	ProfilePicture string `json:"profilePicture"`
}

func (h *userHandler) SetProfilePicture(c *gin.Context) {
	userID := c.Query("userId")
	var req setProfilePictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if userID == "" || req.ProfilePicture == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and profilePicture are required"})
		return
	}

	if err := h.service.SetProfilePicture(c.Request.Context(), userID, req.ProfilePicture); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated successfully"})
}
