package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-ordering-api/handlers"
	"food-ordering-api/models"
)

func TestGetMyRestaurantOrdersExpanded(t *testing.T) {
	db := newTestDB(t)
	h := handlers.New(db, &fakeImageStore{}, []byte("test-secret"))
	owner := createUser(t, db)
	customer := createUser(t, db)
	restaurant := createRestaurant(t, db, owner.ID)
	createOrder(t, db, restaurant.ID, customer.ID, models.StatusPlaced)
	createOrder(t, db, restaurant.ID, customer.ID, models.StatusPaid)

	r := newTestRouter(h, owner.ID)
	rec := doRequest(r, http.MethodGet, "/api/my/restaurant/order", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, restaurant.ID, o.Restaurant.ID)
		assert.Equal(t, customer.Email, o.User.Email)
		assert.NotEmpty(t, o.CartItems)
	}
}

func TestGetMyRestaurantOrdersWithoutRestaurant(t *testing.T) {
	db := newTestDB(t)
	h := handlers.New(db, &fakeImageStore{}, []byte("test-secret"))
	user := createUser(t, db)

	r := newTestRouter(h, user.ID)
	rec := doRequest(r, http.MethodGet, "/api/my/restaurant/order", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOrderStatusInvalidID(t *testing.T) {
	db := newTestDB(t)
	h := handlers.New(db, &fakeImageStore{}, []byte("test-secret"))
	owner := createUser(t, db)

	r := newTestRouter(h, owner.ID)
	rec := doJSON(r, http.MethodPatch, "/api/my/restaurant/order/not-a-number/status", `{"status":"paid"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	h := handlers.New(db, &fakeImageStore{}, []byte("test-secret"))
	owner := createUser(t, db)

	r := newTestRouter(h, owner.ID)
	rec := doJSON(r, http.MethodPatch, "/api/my/restaurant/order/9999/status", `{"status":"paid"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOrderStatusUnauthorized(t *testing.T) {
	db := newTestDB(t)
	h := handlers.New(db, &fakeImageStore{}, []byte("test-secret"))
	owner := createUser(t, db)
	customer := createUser(t, db)
	stranger := createUser(t, db)
	restaurant := createRestaurant(t, db, owner.ID)
	order := createOrder(t, db, restaurant.ID, customer.ID, models.StatusPaid)

	r := newTestRouter(h, stranger.ID)
	rec := doJSON(r, http.MethodPatch, "/api/my/restaurant/order/1/status", `{"status":"inProgress"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.StatusPaid, reloaded.Status)
}

func TestUpdateOrderStatusHappyPath(t *testing.T) {
	db := newTestDB(t)
	h := handlers.New(db, &fakeImageStore{}, []byte("test-secret"))
	owner := createUser(t, db)
	customer := createUser(t, db)
	restaurant := createRestaurant(t, db, owner.ID)
	order := createOrder(t, db, restaurant.ID, customer.ID, models.StatusPaid)

	r := newTestRouter(h, owner.ID)
	rec := doJSON(r, http.MethodPatch, "/api/my/restaurant/order/1/status", `{"status":"inProgress"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.StatusInProgress, got.Status)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.StatusInProgress, reloaded.Status)
}

func TestUpdateOrderStatusIllegalTransition(t *testing.T) {
	db := newTestDB(t)
	h := handlers.New(db, &fakeImageStore{}, []byte("test-secret"))
	owner := createUser(t, db)
	customer := createUser(t, db)
	restaurant := createRestaurant(t, db, owner.ID)
	order := createOrder(t, db, restaurant.ID, customer.ID, models.StatusPlaced)

	r := newTestRouter(h, owner.ID)
	rec := doJSON(r, http.MethodPatch, "/api/my/restaurant/order/1/status", `{"status":"delivered"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.StatusPlaced, reloaded.Status)
}
