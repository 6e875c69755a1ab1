package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

// UpdateProduct replaces a product's fields. The image URL is kept.
func UpdateProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := response.PathID(c, "id")
		if !ok {
			return
		}

		var input services.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}

		product, err := products.Update(c.Request.Context(), id, input)
		if err != nil {
			response.Error(c, err, "Failed to update product")
			return
		}
		response.Success(c, http.StatusOK, "Product updated successfully", gin.H{"product": product})
	}
}
