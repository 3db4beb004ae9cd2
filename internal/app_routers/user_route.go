package approuters

import (
	"github.com/Toglefritz/Launchpad/internal/configuration"

	"github.com/gin-gonic/gin"
)

func UserRouters(router *gin.Engine, container *configuration.Container) {
	userRoute := router.Group("/launchpad/api/users")
	{
		userRoute.POST("/create-user", container.UserHandler.CreateUser)
		userRoute.GET("/current-projects", container.UserHandler.GetCurrentProjects)
		userRoute.GET("/achievements", container.UserHandler.GetAchievements)
		userRoute.GET("/profile-picture", container.UserHandler.GetProfilePicture)
		userRoute.PUT("/profile-picture", container.UserHandler.SetProfilePicture)
	}
}
