// order.go - Defines the Order and OrderItem models
// An order is an immutable snapshot of a checkout: the total and the
// per-line prices are captured when the order is created and never
// recomputed, even if product prices change later.

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderNumber string          `gorm:"unique;not null" json:"order_number"`                          // Opaque external reference (uuid)
	UserID      uint            `gorm:"not null;index" json:"user_id"`                                // Owning user
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`              // Frozen at creation
	Status      OrderStatus     `gorm:"type:text;not null;default:'pending'" json:"status"`           // Starts pending
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`  // Order lines
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // Unit price at order time, not the live price
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
