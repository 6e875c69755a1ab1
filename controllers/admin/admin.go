package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/models"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

// Every handler here sits behind middleware.RequireAdmin.

// GET /api/users/admin/dashboard
func Dashboard(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := users.Dashboard(c.Request.Context())
		if err != nil {
			response.Internal(c, err, "Failed to load dashboard")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"dashboard": d})
	}
}

// GET /api/users/admin/allusers?role=
func GetAllUsers(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			list []models.User
			err  error
		)
		if raw := c.Query("role"); raw != "" {
			role, perr := models.ParseRole(raw)
			if perr != nil {
				response.BadRequest(c, "Invalid role: "+raw)
				return
			}
			list, err = users.ListUsersByRole(c.Request.Context(), role)
		} else {
			list, err = users.ListUsers(c.Request.Context())
		}
		if err != nil {
			response.Internal(c, err, "Failed to get users")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"users": list})
	}
}

// GET /api/users/admin/all-products
func GetAllProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			response.Internal(c, err, "Failed to get products")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"products": list})
	}
}

// GET /api/users/admin/all-orders?status=
func GetAllOrders(users *services.UserService, orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			list []models.Order
			err  error
		)
		if raw := c.Query("status"); raw != "" {
			status, perr := models.ParseOrderStatus(raw)
			if perr != nil {
				response.BadRequest(c, "Invalid status: "+raw)
				return
			}
			list, err = orders.ListByStatus(c.Request.Context(), status)
		} else {
			list, err = users.ListAllOrders(c.Request.Context())
		}
		if err != nil {
			response.Internal(c, err, "Failed to get orders")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"orders": list})
	}
}

// PUT /api/users/admin/update-role?targetUserId=&newRole=
func UpdateUserRole(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, ok := response.QueryID(c, "targetUserId", "Target user ID is required")
		if !ok {
			return
		}
		raw := c.Query("newRole")
		if raw == "" {
			response.BadRequest(c, "Role cannot be null")
			return
		}
		role, err := models.ParseRole(raw)
		if err != nil {
			response.BadRequest(c, "Invalid role: "+raw)
			return
		}

		user, err := users.UpdateRole(c.Request.Context(), targetID, role)
		if err != nil {
			response.Error(c, err, "Failed to update role")
			return
		}
		response.Success(c, http.StatusOK, "User role updated successfully", gin.H{"user": user})
	}
}

// PUT /api/users/admin/orders/:id/status?status=
func UpdateOrderStatus(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := response.PathID(c, "id")
		if !ok {
			return
		}

		order, err := orders.UpdateOrderStatus(c.Request.Context(), id, c.Query("status"))
		if err != nil {
			response.Error(c, err, "Failed to update order status")
			return
		}
		response.Success(c, http.StatusOK, "Order status updated successfully", gin.H{"order": order})
	}
}

// DELETE /api/users/admin/delete-user/:id
func DeleteUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := response.PathID(c, "id")
		if !ok {
			return
		}

		if err := users.Delete(c.Request.Context(), id); err != nil {
			response.Error(c, err, "Failed to delete user")
			return
		}
		response.Success(c, http.StatusOK, "User deleted successfully", nil)
	}
}
