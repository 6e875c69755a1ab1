package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/junaidrashid-git/echocart-api/controllers/user"
)

// SetupAuthRoutes registers registration and login under /api/users.
func SetupAuthRoutes(api *gin.RouterGroup, d Deps) {
	authGroup := api.Group("/users")
	if d.LoginLimiter != nil {
		authGroup.Use(d.LoginLimiter.Handler())
	}
	{
		authGroup.POST("/register/customer", userControllers.RegisterCustomer(d.Users))
		authGroup.POST("/register/admin", userControllers.RegisterAdmin(d.Users))
		authGroup.POST("/login", userControllers.Login(d.Users))
	}
}
