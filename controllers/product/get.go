package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := response.PathID(c, "id")
		if !ok {
			return
		}

		product, err := products.Get(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to get product")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"product": product})
	}
}
