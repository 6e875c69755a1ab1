package productcontroller

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProductsToExcel streams the catalog as products.xlsx.
func ExportProductsToExcel(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Build in memory so a failure can still answer with JSON.
		var buf bytes.Buffer
		if err := products.ExportExcel(c.Request.Context(), &buf); err != nil {
			response.Internal(c, err, "Failed to export products")
			return
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}
