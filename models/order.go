package models

import "time"

// OrderStatus represents all possible states of a food order
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusPaid           OrderStatus = "paid"
	StatusInProgress     OrderStatus = "inProgress"
	StatusOutForDelivery OrderStatus = "outForDelivery"
	StatusDelivered      OrderStatus = "delivered"
)

// DeliveryDetails is a snapshot of where the order goes, taken at
// placement time so later profile edits don't redirect it.
type DeliveryDetails struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	City         string `json:"city"`
}

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	RestaurantID    uint            `json:"restaurant_id" gorm:"not null"`
	Restaurant      Restaurant      `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	UserID          uint            `json:"user_id" gorm:"not null"`
	User            User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'placed'"`
	DeliveryDetails DeliveryDetails `json:"delivery_details" gorm:"embedded;embeddedPrefix:delivery_"`
	CartItems       []CartItem      `json:"cart_items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64         `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CartItem struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	OrderID    uint   `json:"order_id" gorm:"not null"`
	MenuItemID uint   `json:"menu_item_id" gorm:"not null"`
	Name       string `json:"name"` // snapshot name at time of order
	Quantity   int    `json:"quantity" gorm:"not null"`
}
