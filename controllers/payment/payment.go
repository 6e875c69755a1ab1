package paymentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

// POST /api/payments
func ProcessPayment(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.PaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		payment, err := payments.ProcessPayment(c.Request.Context(), input)
		if err != nil {
			response.Error(c, err, "Payment processing failed")
			return
		}
		response.Success(c, http.StatusOK, "Payment processed successfully", gin.H{"payment": payment})
	}
}

// GET /api/payments/:id
func GetPaymentStatus(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := response.PathID(c, "id")
		if !ok {
			return
		}

		payment, err := payments.GetPaymentStatus(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err, "Failed to get payment")
			return
		}
		response.Success(c, http.StatusOK, "", gin.H{"payment": payment})
	}
}
