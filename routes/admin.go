package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/junaidrashid-git/echocart-api/controllers/admin"
	productcontroller "github.com/junaidrashid-git/echocart-api/controllers/product"
	"github.com/junaidrashid-git/echocart-api/middleware"
)

// SetupAdminRoutes registers all /api/users/admin/* endpoints behind the admin check.
func SetupAdminRoutes(api *gin.RouterGroup, d Deps) {
	adminGroup := api.Group("/users/admin")
	adminGroup.Use(middleware.RequireAdmin(d.Users, d.Users.Tokens()))
	{
		// ─────────── Overview ───────────
		adminGroup.GET("/dashboard", adminController.Dashboard(d.Users))

		// ─────────── User Management ───────────
		adminGroup.GET("/allusers", adminController.GetAllUsers(d.Users))
		adminGroup.PUT("/update-role", adminController.UpdateUserRole(d.Users))
		adminGroup.DELETE("/delete-user/:id", adminController.DeleteUser(d.Users))

		// ─────────── Catalog + Orders ───────────
		adminGroup.GET("/all-products", adminController.GetAllProducts(d.Products))
		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(d.Products))
		adminGroup.GET("/all-orders", adminController.GetAllOrders(d.Users, d.Orders))
		adminGroup.PUT("/orders/:id/status", adminController.UpdateOrderStatus(d.Orders))
	}
}
