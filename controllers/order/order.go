package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

// POST /api/orders
func PlaceOrderHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		order, err := orders.CreateOrder(c.Request.Context(), input)
		if err != nil {
			response.Error(c, err, "Failed to create order")
			return
		}
		response.Success(c, http.StatusOK, "Order created successfully", gin.H{"order": order})
	}
}

// GET /api/orders/:id
func GetOrderHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := response.PathID(c, "id")
		if !ok {
			return
		}

		order, err := orders.GetOrderDetails(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to get order")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"order": order})
	}
}

// GET /api/orders/user/:userId
func GetUserOrdersHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := response.PathID(c, "userId")
		if !ok {
			return
		}

		list, err := orders.ListUserOrders(c.Request.Context(), userID)
		if err != nil {
			response.Internal(c, err, "Failed to get user orders")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"orders": list})
	}
}

// PUT /api/orders/:id/status?status=
func UpdateOrderStatusHandler(orders *services.OrderService) gin.HandlerFunc {
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
		response.Success(c, http.StatusOK, "Order status updated", gin.H{"order": order})
	}
}
