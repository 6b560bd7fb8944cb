package handlers

import (
	"log"
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	RestaurantID    uint                   `json:"restaurantId" binding:"required"`
	DeliveryDetails models.DeliveryDetails `json:"deliveryDetails" binding:"required"`
	CartItems       []struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"cartItems" binding:"required,min=1"`
}

// PlaceOrder creates a new order for the caller. Prices come from the
// restaurant's stored menu, never from the client.
func (h *Handler) PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := h.db.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}

	var cartItems []models.CartItem
	total := restaurant.DeliveryPrice
	for _, it := range req.CartItems {
		var menuItem models.MenuItem
		if err := h.db.Where("id = ? AND restaurant_id = ?", it.MenuItemID, restaurant.ID).
			First(&menuItem).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Menu item not found"})
			return
		}
		total += menuItem.Price * float64(it.Quantity)
		cartItems = append(cartItems, models.CartItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   it.Quantity,
		})
	}

	order := models.Order{
		RestaurantID:    restaurant.ID,
		UserID:          userID,
		Status:          models.StatusPlaced,
		DeliveryDetails: req.DeliveryDetails,
		CartItems:       cartItems,
		TotalAmount:     total,
	}

	if err := h.db.Create(&order).Error; err != nil {
		log.Println("Error placing order:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error placing order"})
		return
	}

	if err := h.db.Preload("Restaurant").Preload("CartItems").First(&order, order.ID).Error; err != nil {
		log.Println("Error reloading order:", err)
	}

	c.JSON(http.StatusCreated, order)
}

// GetMyOrders returns the caller's orders, newest first.
func (h *Handler) GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var orders []models.Order
	if err := h.db.Preload("Restaurant").Preload("CartItems").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		log.Println("Error fetching orders:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
