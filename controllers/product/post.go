package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

// CreateProduct adds a product to the catalog.
func CreateProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}

		product, err := products.Add(c.Request.Context(), input)
		if err != nil {
			response.Error(c, err, "Failed to add product")
			return
		}
		response.Success(c, http.StatusOK, "Product added successfully", gin.H{"product": product})
	}
}
