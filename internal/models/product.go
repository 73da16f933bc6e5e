package models

import "gorm.io/gorm"

// Product represents a catalog product.
type Product struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Category   string  `json:"category" gorm:"type:varchar(50);index" validate:"required,max=50"`
	Stock      int     `json:"stock" validate:"gte=0"`
	ImageURL   string  `json:"image_url,omitempty" gorm:"type:varchar(255)" validate:"omitempty,url"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductFilter narrows and sorts catalog listings.
type ProductFilter struct {
	Category string
	Search   string // case-insensitive substring match on name
	SortBy   string // "asc" or "desc" by price, empty leaves insertion order
}
