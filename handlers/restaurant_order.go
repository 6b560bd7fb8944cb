package handlers

import (
	"log"
	"net/http"
	"strconv"

	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetMyRestaurantOrders returns every order placed against the
// caller's restaurant, with restaurant and user references expanded.
func (h *Handler) GetMyRestaurantOrders(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var restaurant models.Restaurant
	if err := h.db.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}

	var orders []models.Order
	query := h.db.Preload("Restaurant").Preload("User").Preload("CartItems").
		Where("restaurant_id = ?", restaurant.ID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		log.Println("Error fetching restaurant orders:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching restaurant orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle. Only the
// owner of the order's restaurant may do this, and only along a legal
// transition.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	// Malformed identifiers are rejected before touching the store.
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}

	var order models.Order
	if err := h.db.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	var restaurant models.Restaurant
	if err := h.db.First(&restaurant, order.RestaurantID).Error; err != nil || restaurant.OwnerID != ownerID {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, statemachine.ActorRestaurant); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":           "Invalid status transition",
			"reason":            err.Error(),
			"current_status":    order.Status,
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	if err := h.db.Model(&order).Update("status", req.Status).Error; err != nil {
		log.Println("Error updating order status:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating order status"})
		return
	}
	order.Status = req.Status

	c.JSON(http.StatusOK, order)
}
