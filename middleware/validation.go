package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Context keys for payloads that already passed validation.
const (
	userRequestKey       = "validatedUserRequest"
	restaurantRequestKey = "validatedRestaurantRequest"
)

var validate = validator.New()

// UserRequest is the my-user profile payload.
type UserRequest struct {
	Name         string `json:"name" validate:"required"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	City         string `json:"city" validate:"required"`
	Country      string `json:"country" validate:"required"`
}

// MenuItemRequest is one menu entry inside a restaurant payload.
type MenuItemRequest struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// RestaurantRequest is the my-restaurant payload, parsed from a
// multipart form (the image file rides alongside it).
type RestaurantRequest struct {
	RestaurantName        string            `validate:"required"`
	City                  string            `validate:"required"`
	Country               string            `validate:"required"`
	DeliveryPrice         float64           `validate:"gte=0"`
	EstimatedDeliveryTime int               `validate:"gte=0"`
	Cuisines              []string          `validate:"required,min=1,dive,required"`
	MenuItems             []MenuItemRequest `validate:"dive"`
}

var userRuleMessages = map[string]string{
	"Name":         "Name must be a non-empty string",
	"AddressLine1": "AddressLine1 must be a non-empty string",
	"City":         "City must be a non-empty string",
	"Country":      "Country must be a non-empty string",
}

var restaurantRuleMessages = map[string]string{
	"RestaurantName":        "Restaurant name is required",
	"City":                  "City is required",
	"Country":               "Country is required",
	"DeliveryPrice":         "Delivery price must be a positive number",
	"EstimatedDeliveryTime": "Estimated delivery time must be a positive integer",
	"Cuisines":              "At least one cuisine is required",
	"MenuItems":             "Menu items must be an array",
	"Name":                  "Menu item name is required",
	"Price":                 "Menu item price must be a positive number",
}

// ValidateMyUserRequest rejects a profile payload unless every rule
// passes, reporting all violations at once.
func ValidateMyUserRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": []string{"Request body must be valid JSON"}})
			return
		}
		if msgs := runRules(req, userRuleMessages); len(msgs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": msgs})
			return
		}
		c.Set(userRequestKey, req)
		c.Next()
	}
}

// ValidateMyRestaurantRequest parses the multipart restaurant form and
// rejects it unless every rule passes, reporting all violations at
// once. Scalar fields and repeated cuisines entries are plain form
// values; menuItems travels as a JSON-encoded form field.
func ValidateMyRestaurantRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var msgs []string

		req := RestaurantRequest{
			RestaurantName: c.PostForm("restaurantName"),
			City:           c.PostForm("city"),
			Country:        c.PostForm("country"),
			Cuisines:       c.PostFormArray("cuisines"),
		}

		price, err := strconv.ParseFloat(c.PostForm("deliveryPrice"), 64)
		if err != nil {
			msgs = append(msgs, restaurantRuleMessages["DeliveryPrice"])
		}
		req.DeliveryPrice = price

		eta, err := strconv.Atoi(c.PostForm("estimatedDeliveryTime"))
		if err != nil {
			msgs = append(msgs, restaurantRuleMessages["EstimatedDeliveryTime"])
		}
		req.EstimatedDeliveryTime = eta

		if raw := c.PostForm("menuItems"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.MenuItems); err != nil {
				msgs = append(msgs, restaurantRuleMessages["MenuItems"])
			}
		} else {
			msgs = append(msgs, restaurantRuleMessages["MenuItems"])
		}

		msgs = append(msgs, runRules(req, restaurantRuleMessages)...)

		if len(msgs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": dedupe(msgs)})
			return
		}
		c.Set(restaurantRequestKey, req)
		c.Next()
	}
}

// UserRequestFrom returns the payload stored by ValidateMyUserRequest.
func UserRequestFrom(c *gin.Context) UserRequest {
	v, _ := c.Get(userRequestKey)
	req, _ := v.(UserRequest)
	return req
}

// RestaurantRequestFrom returns the payload stored by
// ValidateMyRestaurantRequest.
func RestaurantRequestFrom(c *gin.Context) RestaurantRequest {
	v, _ := c.Get(restaurantRequestKey)
	req, _ := v.(RestaurantRequest)
	return req
}

// runRules validates s and maps every field violation to its
// human-readable rule message.
func runRules(s interface{}, messages map[string]string) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request payload"}
	}
	var out []string
	for _, fe := range verrs {
		field := fe.StructField()
		// dive errors report as e.g. "Cuisines[0]"
		if i := strings.Index(field, "["); i >= 0 {
			field = field[:i]
		}
		msg, ok := messages[field]
		if !ok {
			msg = field + " is invalid"
		}
		out = append(out, msg)
	}
	return out
}

func dedupe(msgs []string) []string {
	seen := make(map[string]bool, len(msgs))
	var out []string
	for _, m := range msgs {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
