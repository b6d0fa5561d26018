// cart.go - Per-user shopping cart management
// Stock checks here are advisory: they validate against the live product
// stock at mutation time but reserve nothing. The checkout transaction in
// order.go re-verifies stock before any decrement, so a cart line can still
// be invalidated by a concurrent order between add and checkout.

package services

import (
	"errors"
	"fmt"

	"go-shop-backend/database"
	"go-shop-backend/models"

	"gorm.io/gorm"
)

// loadCart - Fetches the user's cart with items and products eagerly loaded
func loadCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := database.DB.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// createCart - Inserts an empty cart for the user.
// Two concurrent first-accesses both miss the lookup and race on the
// user_id unique index; the loser's insert fails on the constraint, so any
// create failure falls back to loading the winner's cart. This keeps the
// no-error-path contract of GetOrCreateCart under concurrency.
func createCart(userID uint) (*models.Cart, error) {
	created := models.Cart{UserID: userID, Items: []models.CartItem{}}
	if err := database.DB.Create(&created).Error; err != nil {
		return loadCart(userID)
	}
	return &created, nil
}

// GetOrCreateCart - Returns the user's cart, creating an empty one on first access
func GetOrCreateCart(user models.User) (*models.Cart, error) {
	cart, err := loadCart(user.ID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return createCart(user.ID)
}

// AddItem - Adds quantity of a product to the user's cart.
// If the product is already in the cart the existing line is incremented,
// and the stock check applies to the combined quantity.
func AddItem(user models.User, productID uint, quantity int) (*models.Cart, error) {
	cart, err := GetOrCreateCart(user)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := database.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Product not found")
		}
		return nil, err
	}

	// Stock check against the requested total for this line
	if product.StockQuantity < quantity {
		return nil, BusinessRule("Insufficient stock")
	}

	var item models.CartItem
	err = database.DB.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	switch {
	case err == nil:
		// Line exists: increment, re-checking stock against the new total
		newQuantity := item.Quantity + quantity
		if product.StockQuantity < newQuantity {
			return nil, BusinessRule("Insufficient stock")
		}
		item.Quantity = newQuantity
		if err := database.DB.Save(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
		if err := database.DB.Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return loadCart(user.ID)
}

// UpdateItem - Sets (not adds to) the quantity of an existing cart line
func UpdateItem(user models.User, productID uint, quantity int) (*models.Cart, error) {
	cart, err := loadCart(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Cart not found")
		}
		return nil, err
	}

	var product models.Product
	if err := database.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Product not found")
		}
		return nil, err
	}

	if product.StockQuantity < quantity {
		return nil, BusinessRule("Insufficient stock")
	}

	var item models.CartItem
	if err := database.DB.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Cart item not found")
		}
		return nil, err
	}

	item.Quantity = quantity
	if err := database.DB.Save(&item).Error; err != nil {
		return nil, err
	}

	return loadCart(user.ID)
}

// RemoveItem - Deletes one product line from the user's cart
func RemoveItem(user models.User, productID uint) error {
	var cart models.Cart
	if err := database.DB.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Cart not found")
		}
		return err
	}

	var item models.CartItem
	if err := database.DB.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Cart item not found")
		}
		return err
	}

	return database.DB.Delete(&item).Error
}

// ClearCart - Deletes all lines from the user's cart (the cart row survives)
func ClearCart(user models.User) error {
	var cart models.Cart
	if err := database.DB.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Cart not found")
		}
		return err
	}

	return database.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}

// insufficientStockFor - Builds the business-rule failure naming the product
func insufficientStockFor(name string) *Error {
	return BusinessRule(fmt.Sprintf("Insufficient stock for %s", name))
}
