package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

// POST /api/cart
func AddToCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		item, err := carts.AddToCart(c.Request.Context(), input)
		if err != nil {
			response.Error(c, err, "Failed to add item to cart")
			return
		}
		response.Success(c, http.StatusOK, "Product added to cart", gin.H{"cart": item})
	}
}

// DELETE /api/cart/:cartId
func RemoveFromCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := response.PathID(c, "cartId")
		if !ok {
			return
		}

		if err := carts.RemoveFromCart(c.Request.Context(), id); err != nil {
			response.Error(c, err, "Failed to remove item from cart")
			return
		}
		response.Success(c, http.StatusOK, "Product removed from cart", nil)
	}
}

// GET /api/cart/user/:userId
func GetCartDetails(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := response.PathID(c, "userId")
		if !ok {
			return
		}

		items, err := carts.GetCartDetails(c.Request.Context(), userID)
		if err != nil {
			response.Internal(c, err, "Failed to get cart")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"cartItems": items})
	}
}
