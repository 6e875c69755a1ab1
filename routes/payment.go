package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/junaidrashid-git/echocart-api/controllers/payment"
)

func SetupPaymentRoutes(api *gin.RouterGroup, d Deps) {
	payments := api.Group("/payments")
	{
		payments.POST("", paymentControllers.ProcessPayment(d.Payments))
		payments.GET("/:id", paymentControllers.GetPaymentStatus(d.Payments))
	}
}
