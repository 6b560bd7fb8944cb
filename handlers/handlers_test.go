package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"food-ordering-api/database"
	"food-ordering-api/handlers"
	"food-ordering-api/imagestore"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
)

// fakeImageStore counts uploads and records deletions so tests can
// check the compensation path.
type fakeImageStore struct {
	uploads int
	deleted []string
}

func (f *fakeImageStore) Upload(_ context.Context, _ *multipart.FileHeader) (imagestore.Asset, error) {
	f.uploads++
	return imagestore.Asset{
		URL:      fmt.Sprintf("https://images.example.com/%d.png", f.uploads),
		PublicID: fmt.Sprintf("img-%d", f.uploads),
	}, nil
}

func (f *fakeImageStore) Delete(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	return db
}

// newTestRouter mounts the authenticated routes with the caller
// identity pinned, standing in for the auth middleware.
func newTestRouter(h *handlers.Handler, callerID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", callerID)
		c.Next()
	})
	api := r.Group("/api")
	api.GET("/my/user", h.GetMyUser)
	api.PUT("/my/user", middleware.ValidateMyUserRequest(), h.UpdateMyUser)
	api.GET("/my/restaurant", h.GetMyRestaurant)
	api.POST("/my/restaurant", middleware.ValidateMyRestaurantRequest(), h.CreateMyRestaurant)
	api.PUT("/my/restaurant", middleware.ValidateMyRestaurantRequest(), h.UpdateMyRestaurant)
	api.GET("/my/restaurant/order", h.GetMyRestaurantOrders)
	api.PATCH("/my/restaurant/order/:orderId/status", h.UpdateOrderStatus)
	api.POST("/order", h.PlaceOrder)
	api.GET("/order", h.GetMyOrders)
	return r
}

func createUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Name:         "Test User",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createRestaurant(t *testing.T, db *gorm.DB, ownerID uint) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		OwnerID:               ownerID,
		Name:                  "Seeded Diner",
		City:                  "Rotterdam",
		Country:               "Netherlands",
		DeliveryPrice:         1.5,
		EstimatedDeliveryTime: 25,
		Cuisines:              []string{"Dutch"},
		MenuItems: []models.MenuItem{
			{Name: "Stamppot", Price: 8},
			{Name: "Bitterballen", Price: 5.5},
		},
		ImageURL: "https://images.example.com/seed.png",
	}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

func createOrder(t *testing.T, db *gorm.DB, restaurantID, userID uint, status models.OrderStatus) models.Order {
	t.Helper()
	order := models.Order{
		RestaurantID: restaurantID,
		UserID:       userID,
		Status:       status,
		DeliveryDetails: models.DeliveryDetails{
			Email:        "hungry@example.com",
			Name:         "Hungry Customer",
			AddressLine1: "2 Harbour Rd",
			City:         "Rotterdam",
		},
		CartItems:   []models.CartItem{{MenuItemID: 1, Name: "Stamppot", Quantity: 2}},
		TotalAmount: 17.5,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

// restaurantForm builds the multipart payload the my-restaurant
// endpoints consume.
func restaurantForm(t *testing.T, withImage bool, overrides map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	fields := map[string]string{
		"restaurantName":        "Napoli Express",
		"city":                  "Amsterdam",
		"country":               "Netherlands",
		"deliveryPrice":         "2.50",
		"estimatedDeliveryTime": "30",
		"menuItems":             `[{"name":"Margherita","price":9.5},{"name":"Diavola","price":11}]`,
	}
	for k, v := range overrides {
		fields[k] = v
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, cuisine := range []string{"Italian", "Pizza"} {
		require.NoError(t, w.WriteField("cuisines", cuisine))
	}
	if withImage {
		part, err := w.CreateFormFile("imageFile", "storefront.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("not-really-a-png"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doRequest(r *gin.Engine, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doJSON(r *gin.Engine, method, path, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

var errUploadFailed = errors.New("upload failed")

// failingImageStore rejects every upload.
type failingImageStore struct{}

func (failingImageStore) Upload(context.Context, *multipart.FileHeader) (imagestore.Asset, error) {
	return imagestore.Asset{}, errUploadFailed
}

func (failingImageStore) Delete(context.Context, string) error { return nil }
