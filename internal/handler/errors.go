package handler

import (
	"errors"
	"net/http"

	"github.com/Toglefritz/Launchpad/internal/repo"
	"github.com/Toglefritz/Launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service/repo errors onto the HTTP surface. Anything that
// is not a recognized caller error is a store failure and surfaces as 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User document not found"})
	case errors.Is(err, repo.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case errors.Is(err, service.ErrDirectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Direction not found"})
	case errors.Is(err, service.ErrAchievementNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Achievement not found"})
	case errors.Is(err, service.ErrMissingProjectID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectData.projectId is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
