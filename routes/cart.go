package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/junaidrashid-git/echocart-api/controllers/cart"
)

func SetupCartRoutes(api *gin.RouterGroup, d Deps) {
	cart := api.Group("/cart")
	{
		cart.POST("", cartControllers.AddToCart(d.Carts))
		cart.DELETE("/:cartId", cartControllers.RemoveFromCart(d.Carts))
		cart.GET("/user/:userId", cartControllers.GetCartDetails(d.Carts))
	}
}
