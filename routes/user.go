package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/junaidrashid-git/echocart-api/controllers/user"
)

// SetupUserRoutes registers the profile endpoints under /api/users.
func SetupUserRoutes(api *gin.RouterGroup, d Deps) {
	userGroup := api.Group("/users")
	{
		userGroup.GET("/:id", userControllers.GetProfile(d.Users))
		userGroup.PUT("/:id/update", userControllers.UpdateProfile(d.Users))
	}
}
