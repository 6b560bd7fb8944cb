package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMyRestaurant fetches the restaurant owned by the caller
func (h *Handler) GetMyRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var restaurant models.Restaurant
	if err := h.db.Preload("MenuItems").Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// CreateMyRestaurant creates the caller's restaurant. Runs behind
// ValidateMyRestaurantRequest; the image file is checked here because
// its absence is a handler-level 400, not a field rule.
func (h *Handler) CreateMyRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var existing models.Restaurant
	if err := h.db.Where("owner_id = ?", ownerID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "User restaurant already exists"})
		return
	}

	file, err := c.FormFile("imageFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
		return
	}

	asset, err := h.images.Upload(c.Request.Context(), file)
	if err != nil {
		log.Println("Error uploading image:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating restaurant"})
		return
	}

	req := middleware.RestaurantRequestFrom(c)
	restaurant := models.Restaurant{
		OwnerID:               ownerID,
		Name:                  req.RestaurantName,
		City:                  req.City,
		Country:               req.Country,
		DeliveryPrice:         req.DeliveryPrice,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		Cuisines:              req.Cuisines,
		MenuItems:             menuItemsFrom(req.MenuItems),
		ImageURL:              asset.URL,
		LastUpdated:           time.Now().UTC(),
	}

	if err := h.db.Create(&restaurant).Error; err != nil {
		// The write failed after the upload succeeded; remove the asset
		// so it doesn't orphan.
		if derr := h.images.Delete(c.Request.Context(), asset.PublicID); derr != nil {
			log.Println("Error deleting uploaded image:", derr)
		}
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "User restaurant already exists"})
			return
		}
		log.Println("Error creating restaurant:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating restaurant"})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// UpdateMyRestaurant overlays the validated fields onto the caller's
// restaurant; the stored image URL is replaced only when a new file is
// supplied. Runs behind ValidateMyRestaurantRequest.
func (h *Handler) UpdateMyRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var restaurant models.Restaurant
	if err := h.db.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Restaurant not found"})
		return
	}

	if file, ferr := c.FormFile("imageFile"); ferr == nil {
		asset, err := h.images.Upload(c.Request.Context(), file)
		if err != nil {
			log.Println("Error uploading image:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating restaurant"})
			return
		}
		restaurant.ImageURL = asset.URL
	}

	req := middleware.RestaurantRequestFrom(c)
	restaurant.Name = req.RestaurantName
	restaurant.City = req.City
	restaurant.Country = req.Country
	restaurant.DeliveryPrice = req.DeliveryPrice
	restaurant.EstimatedDeliveryTime = req.EstimatedDeliveryTime
	restaurant.Cuisines = req.Cuisines
	restaurant.LastUpdated = time.Now().UTC()

	// Menu is an ordered whole; replace it rather than diffing. The
	// delete and the save commit together so a failed save keeps the
	// old menu.
	restaurant.MenuItems = menuItemsFrom(req.MenuItems)
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Save(&restaurant).Error
	})
	if err != nil {
		log.Println("Error updating restaurant:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating restaurant"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func menuItemsFrom(items []middleware.MenuItemRequest) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.MenuItem{Name: it.Name, Price: it.Price})
	}
	return out
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
