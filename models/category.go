// category.go - Defines the Category model for the product catalog

package models

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"` // Unique category ID
	Name        string    `gorm:"not null" json:"name"` // Category name
	Description string    `json:"description"`          // Optional description
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
