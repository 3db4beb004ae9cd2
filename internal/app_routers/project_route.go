package approuters

import (
	"github.com/Toglefritz/Launchpad/internal/configuration"

	"github.com/gin-gonic/gin"
)

func ProjectRouters(router *gin.Engine, container *configuration.Container) {
	projectRoute := router.Group("/launchpad/api/projects")
	{
		projectRoute.POST("/create-project", container.ProjectHandler.CreateProject)
		projectRoute.GET("/read-project", container.ProjectHandler.ReadProject)
		projectRoute.PATCH("/update-project", container.ProjectHandler.UpdateProject)
		projectRoute.DELETE("/delete-project", container.ProjectHandler.DeleteProject)
		projectRoute.POST("/set-current-step", container.ProjectHandler.SetCurrentStep)

		projectRoute.POST("/toggle-direction", container.CompletionHandler.ToggleDirection)
		projectRoute.POST("/toggle-achievement", container.CompletionHandler.ToggleAchievement)
	}
}
