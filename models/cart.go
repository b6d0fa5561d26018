// cart.go - Defines the Cart and CartItem models
// One cart per user, created lazily on first access. Re-adding a product
// that is already in the cart increments the existing line instead of
// inserting a duplicate row (unique index on cart_id+product_id).

package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"`                            // Enforces one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`     // Cart lines (cascade delete with cart)
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"not null;uniqueIndex:ux_cart_items_cart_product" json:"cart_id"`    // Composite unique with ProductID
	ProductID uint      `gorm:"not null;uniqueIndex:ux_cart_items_cart_product" json:"product_id"` // One line per product per cart
	Quantity  int       `gorm:"not null" json:"quantity"`                                          // Desired units (>= 1)
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
