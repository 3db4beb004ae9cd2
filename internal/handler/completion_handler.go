package handler

import (
	"net/http"

	"github.com/Toglefritz/Launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

type CompletionHandler interface {
	ToggleDirection(c *gin.Context)
	ToggleAchievement(c *gin.Context)
}

type completionHandler struct {
	service service.CompletionService
}

func NewCompletionHandler(service service.CompletionService) CompletionHandler {
	return &completionHandler{
		service: service,
	}
}

func (h *completionHandler) ToggleDirection(c *gin.Context) {
	projectID := c.Query("projectId")
	directionID := c.Query("directionId")
	if projectID == "" || directionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectId and directionId are required"})
		return
	}

	complete, err := h.service.ToggleDirection(c.Request.Context(), projectID, directionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complete": complete})
}

func (h *completionHandler) ToggleAchievement(c *gin.Context) {
	projectID := c.Query("projectId")
	achievementID := c.Query("achievementId")
	userID := c.Query("userId")
	if projectID == "" || achievementID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId, projectId, and achievementId are required"})
		return
	}

	complete, err := h.service.ToggleAchievement(c.Request.Context(), projectID, achievementID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complete": complete})
}
