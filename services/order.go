// order.go - Order placement and order reads
// This file implements the checkout core:
// 1. Cart -> order transformation with per-line price capture
// 2. Guarded stock decrement (compare-and-set, no row locks)
// 3. Atomic cart clearing inside the same transaction

package services

import (
	"errors"

	"go-shop-backend/database"
	"go-shop-backend/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateOrderFromCart - Converts the user's cart into an immutable order.
// The whole sequence (order header, order items, stock decrements, cart
// clearing) runs inside one transaction: any failure rolls everything back,
// so stock is never decremented without a matching order and vice versa.
//
// Stock is re-verified inside the transaction with a guarded UPDATE
// (stock_quantity = stock_quantity - ? WHERE ... AND stock_quantity >= ?).
// Zero rows affected means a concurrent checkout won the race; this one
// fails with an insufficient-stock error and rolls back. No retry.
func CreateOrderFromCart(user models.User) (*models.Order, error) {
	// STEP 1: Load the cart with items and products
	cart, err := loadCart(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, BusinessRule("Cart is empty")
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, BusinessRule("Cart is empty")
	}

	// STEP 2: Advisory stock check and total computation, short-circuiting
	// on the first offending product. Totals use the live price; the same
	// price is frozen into each order item below.
	total := decimal.Zero
	for _, item := range cart.Items {
		if item.Product == nil {
			// Product was removed from the catalog after being carted
			return nil, NotFound("Product not found")
		}
		if item.Product.StockQuantity < item.Quantity {
			return nil, insufficientStockFor(item.Product.Name)
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	var order models.Order
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// STEP 3: Create the order header
		order = models.Order{
			OrderNumber: uuid.NewString(),
			UserID:      user.ID,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// STEP 4: Per line, freeze the current price into an order item and
		// decrement stock with the guarded compare-and-set
		for _, item := range cart.Items {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price, // Price at order time
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// A concurrent checkout consumed the stock first
				return insufficientStockFor(item.Product.Name)
			}
		}

		// STEP 5: Empty the cart; the cart row itself survives for reuse
		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("user_id", user.ID).
		Str("order_number", order.OrderNumber).
		Str("total", order.TotalAmount.String()).
		Int("lines", len(cart.Items)).
		Msg("order placed")

	// STEP 6: Return the order with items and products loaded
	if err := database.DB.Preload("Items.Product").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetUserOrders - Lists the user's orders with items and products loaded
func GetUserOrders(user models.User) ([]models.Order, error) {
	var orders []models.Order
	err := database.DB.Preload("Items.Product").
		Where("user_id = ?", user.ID).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderByID - Fetches one of the user's orders.
// A nonexistent order and an order owned by someone else both come back as
// NotFound, so the existence of other users' orders never leaks.
func GetOrderByID(user models.User, orderID uint) (*models.Order, error) {
	var order models.Order
	err := database.DB.Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, user.ID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Order not found")
		}
		return nil, err
	}
	return &order, nil
}
