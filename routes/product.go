package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/junaidrashid-git/echocart-api/controllers/product"
)

func SetupProductRoutes(api *gin.RouterGroup, d Deps) {
	products := api.Group("/products")
	{
		products.POST("", productcontroller.CreateProduct(d.Products))
		products.GET("", productcontroller.GetProducts(d.Products))
		products.GET("/:id", productcontroller.GetProductByID(d.Products))
		products.PUT("/:id", productcontroller.UpdateProduct(d.Products))
		products.DELETE("/:id", productcontroller.DeleteProduct(d.Products))
	}
}
