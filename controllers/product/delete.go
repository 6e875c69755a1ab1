package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

func DeleteProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := response.PathID(c, "id")
		if !ok {
			return
		}

		if err := products.Delete(c.Request.Context(), id); err != nil {
			response.Error(c, err, "Failed to delete product")
			return
		}
		response.Success(c, http.StatusOK, "Product deleted successfully", nil)
	}
}
