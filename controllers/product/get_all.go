package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

// GetProducts lists the whole catalog.
func GetProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			response.Internal(c, err, "Failed to get products")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"products": list})
	}
}
