package handlers

import (
	"gorm.io/gorm"

	"food-ordering-api/imagestore"
)

// Handler carries the injected collaborators every endpoint needs.
type Handler struct {
	db        *gorm.DB
	images    imagestore.Store
	jwtSecret []byte
}

func New(db *gorm.DB, images imagestore.Store, jwtSecret []byte) *Handler {
	return &Handler{db: db, images: images, jwtSecret: jwtSecret}
}
