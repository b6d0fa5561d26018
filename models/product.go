// product.go - Defines the Product model for the product catalog

package models

import (
	"time"

	"github.com/shopspring/decimal" // Exact decimal arithmetic for money
)

type Product struct {
	ID            uint            `gorm:"primaryKey" json:"id"`                                             // Unique product ID
	Name          string          `gorm:"not null" json:"name"`                                             // Product name
	Description   string          `json:"description"`                                                      // Product description
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`                         // Unit price (non-negative)
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`                         // Units available (non-negative)
	CategoryID    uint            `gorm:"not null;index" json:"category_id"`                                // Foreign key to categories table
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`                  // Owning category
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
