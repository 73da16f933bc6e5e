package models

import "gorm.io/gorm"

// User represents a registered customer or administrator.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	IsAdmin    bool   `json:"is_admin" gorm:"default:false"`
	Address    string `json:"address,omitempty" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
