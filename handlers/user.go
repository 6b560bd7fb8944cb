package handlers

import (
	"log"
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// GetMyUser returns the authenticated user's profile
func (h *Handler) GetMyUser(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMyUser overlays the validated profile fields onto the caller's
// record. Runs behind ValidateMyUserRequest.
func (h *Handler) UpdateMyUser(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	req := middleware.UserRequestFrom(c)
	user.Name = req.Name
	user.AddressLine1 = req.AddressLine1
	user.City = req.City
	user.Country = req.Country

	if err := h.db.Save(&user).Error; err != nil {
		log.Println("Error updating user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user"})
		return
	}
	c.JSON(http.StatusOK, user)
}
