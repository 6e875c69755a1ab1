package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/events"
	"github.com/junaidrashid-git/echocart-api/middleware"
	"github.com/junaidrashid-git/echocart-api/response"
	"github.com/junaidrashid-git/echocart-api/services"
)

// Deps is everything the route groups hand to their controllers.
type Deps struct {
	Users        *services.UserService
	Products     *services.ProductService
	Carts        *services.CartService
	Orders       *services.OrderService
	Payments     *services.PaymentService
	Hub          *events.Hub
	LoginLimiter *middleware.RateLimiter
	Metrics      *middleware.Metrics
}

// SetupRoutes is the single entry‐point that wires up every /api route group.
func SetupRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "", gin.H{"status": "UP"})
	})
	if d.Metrics != nil {
		r.GET("/metrics", d.Metrics.Handler())
	}

	api := r.Group("/api")

	// 1️⃣ Public registration + login (rate limited)
	SetupAuthRoutes(api, d)

	// 2️⃣ User profile routes
	SetupUserRoutes(api, d)

	// 3️⃣ Admin routes (admin check per request)
	SetupAdminRoutes(api, d)

	// catalog, cart, orders, payments
	SetupProductRoutes(api, d)
	SetupCartRoutes(api, d)
	SetupOrderRoutes(api, d)
	SetupPaymentRoutes(api, d)
}
