package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/junaidrashid-git/echocart-api/controllers/order"
)

func SetupOrderRoutes(api *gin.RouterGroup, d Deps) {
	orders := api.Group("/orders")
	{
		// Create a new order
		orders.POST("", orderControllers.PlaceOrderHandler(d.Orders))

		// websocket endpoint for real-time order updates
		if d.Hub != nil {
			orders.GET("/ws", d.Hub.Handler())
		}

		orders.GET("/:id", orderControllers.GetOrderHandler(d.Orders))

		// Fetch orders for a specific user
		orders.GET("/user/:userId", orderControllers.GetUserOrdersHandler(d.Orders))

		// Update order status (any status may follow any other)
		orders.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(d.Orders))
	}
}
