package handler

import (
	"net/http"

	"github.com/Toglefritz/Launchpad/internal/model"
	"github.com/Toglefritz/Launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler interface {
	CreateProject(c *gin.Context)
	ReadProject(c *gin.Context)
	UpdateProject(c *gin.Context)
	DeleteProject(c *gin.Context)
	SetCurrentStep(c *gin.Context)
}

type projectHandler struct {
	service service.ProjectService
}

func NewProjectHandler(service service.ProjectService) ProjectHandler {
	return &projectHandler{
		service: service,
	}
}

type createProjectRequest struct {
	UserID      string        `json:"userId"`
	ProjectData model.Project `json:"projectData"`
}

func (h *projectHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UserID == "" || req.ProjectData.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and projectData are required"})
		return
	}

	projectID, err := h.service.CreateProject(c.Request.Context(), req.UserID, req.ProjectData)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"projectId": projectID})
}

func (h *projectHandler) ReadProject(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectId is required"})
		return
	}

	project, err := h.service.ReadProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) UpdateProject(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectId is required"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must contain fields to update"})
		return
	}

	if err := h.service.UpdateProject(c.Request.Context(), projectID, fields); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully"})
}

type deleteProjectRequest struct {
	UserID string `json:"userId"`
}

func (h *projectHandler) DeleteProject(c *gin.Context) {
	projectID := c.Query("projectId")
	var req deleteProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if projectID == "" || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectId and userId are required"})
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), projectID, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

type setCurrentStepRequest struct {
	CurrentStep *int `json:"currentStep"`
}

func (h *projectHandler) SetCurrentStep(c *gin.Context) {
	projectID := c.Query("projectId")
	var req setCurrentStepRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentStep == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currentStep is required"})
		return
	}
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectId is required"})
		return
	}

	if err := h.service.SetCurrentStep(c.Request.Context(), projectID, *req.CurrentStep); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Current step updated successfully"})
}
