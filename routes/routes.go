package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, jwtSecret []byte) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(jwtSecret))
	{
		// Profile
		auth.GET("/my/user", h.GetMyUser)
		auth.PUT("/my/user", middleware.ValidateMyUserRequest(), h.UpdateMyUser)

		// Restaurant management
		auth.GET("/my/restaurant", h.GetMyRestaurant)
		auth.POST("/my/restaurant", middleware.ValidateMyRestaurantRequest(), h.CreateMyRestaurant)
		auth.PUT("/my/restaurant", middleware.ValidateMyRestaurantRequest(), h.UpdateMyRestaurant)

		// Restaurant-side order management
		auth.GET("/my/restaurant/order", h.GetMyRestaurantOrders)
		auth.PATCH("/my/restaurant/order/:orderId/status", h.UpdateOrderStatus)

		// Customer-side orders
		auth.POST("/order", h.PlaceOrder)
		auth.GET("/order", h.GetMyOrders)
	}
}
