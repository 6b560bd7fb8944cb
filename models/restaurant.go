package models

import "time"

type Restaurant struct {
	ID uint `json:"id" gorm:"primaryKey"`
	// One restaurant per owner, enforced by the index rather than
	// only the create-time lookup.
	OwnerID               uint       `json:"owner_id" gorm:"uniqueIndex;not null"`
	Owner                 User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name                  string     `json:"name" gorm:"not null"`
	City                  string     `json:"city" gorm:"not null"`
	Country               string     `json:"country" gorm:"not null"`
	DeliveryPrice         float64    `json:"delivery_price"`
	EstimatedDeliveryTime int        `json:"estimated_delivery_time"` // minutes
	Cuisines              []string   `json:"cuisines" gorm:"serializer:json"`
	MenuItems             []MenuItem `json:"menu_items" gorm:"foreignKey:RestaurantID"`
	ImageURL              string     `json:"image_url"`
	LastUpdated           time.Time  `json:"last_updated"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	RestaurantID uint    `json:"restaurant_id" gorm:"not null"`
	Name         string  `json:"name" gorm:"not null"`
	Price        float64 `json:"price" gorm:"not null"`
}
