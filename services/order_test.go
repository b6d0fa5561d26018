// order_test.go - Automated tests for the checkout transaction and order reads
// Run with: go test ./...

package services

import (
	"os"
	"testing"

	"go-shop-backend/database"
	"go-shop-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// setupOrderTestDB removes any existing test DB and creates a new one for each test run
func setupOrderTestDB(t *testing.T) {
	_ = os.Remove("test_order.db")
	assert.NoError(t, database.Connect("test_order.db"))
	t.Cleanup(func() { _ = os.Remove("test_order.db") })
}

// reloadProduct - Reads a product's current row
func reloadProduct(t *testing.T, id uint) models.Product {
	var product models.Product
	assert.NoError(t, database.DB.First(&product, id).Error)
	return product
}

// TestCheckoutScenario - Cart with A (price 100, qty 2) and B (price 50,
// qty 1), stock A=5 B=5: total 250, stock 3/4, cart emptied but still there
func TestCheckoutScenario(t *testing.T) {
	setupOrderTestDB(t)
	user := createTestUser(t, "order1@example.com")
	productA := createTestProduct(t, "Product A", "100.00", 5)
	productB := createTestProduct(t, "Product B", "50.00", 5)

	_, err := AddItem(user, productA.ID, 2)
	assert.NoError(t, err)
	_, err = AddItem(user, productB.ID, 1)
	assert.NoError(t, err)

	order, err := CreateOrderFromCart(user)
	assert.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(250)),
		"total should be 250, got %s", order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Len(t, order.Items, 2)

	// Stock decremented by exactly the ordered quantities
	assert.Equal(t, 3, reloadProduct(t, productA.ID).StockQuantity)
	assert.Equal(t, 4, reloadProduct(t, productB.ID).StockQuantity)

	// The cart is empty but still exists
	cart, err := GetOrCreateCart(user)
	assert.NoError(t, err)
	assert.NotZero(t, cart.ID)
	assert.Empty(t, cart.Items)
}

// TestCheckoutEmptyCart - Absent cart and empty cart both fail, and no
// order rows are created
func TestCheckoutEmptyCart(t *testing.T) {
	setupOrderTestDB(t)
	user := createTestUser(t, "order2@example.com")

	// No cart at all
	_, err := CreateOrderFromCart(user)
	var svcErr *Error
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindBusinessRule, svcErr.Kind)

	// Cart exists but is empty
	_, err = GetOrCreateCart(user)
	assert.NoError(t, err)
	_, err = CreateOrderFromCart(user)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindBusinessRule, svcErr.Kind)

	var count int64
	database.DB.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

// TestCheckoutInsufficientStockIsAtomic - When stock drops below the carted
// quantity before checkout, the checkout fails naming the product and
// leaves no order, no stock change and an intact cart
func TestCheckoutInsufficientStockIsAtomic(t *testing.T) {
	setupOrderTestDB(t)
	user := createTestUser(t, "order3@example.com")
	product := createTestProduct(t, "Scarce Product", "10.00", 5)

	_, err := AddItem(user, product.ID, 3)
	assert.NoError(t, err)

	// Stock shrinks after the add (e.g. a concurrent order)
	assert.NoError(t, database.DB.Model(&models.Product{}).
		Where("id = ?", product.ID).
		UpdateColumn("stock_quantity", 2).Error)

	_, err = CreateOrderFromCart(user)
	var svcErr *Error
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindBusinessRule, svcErr.Kind)
	assert.Contains(t, svcErr.Message, "Scarce Product")

	// Nothing happened: no order, stock untouched, cart line intact
	var orders int64
	database.DB.Model(&models.Order{}).Count(&orders)
	assert.Zero(t, orders)
	var orderItems int64
	database.DB.Model(&models.OrderItem{}).Count(&orderItems)
	assert.Zero(t, orderItems)
	assert.Equal(t, 2, reloadProduct(t, product.ID).StockQuantity)
	assert.Equal(t, 3, cartQuantity(t, user, product.ID))
}

// TestOrderPriceFrozen - Changing the product price after checkout does not
// change the order total or the captured item price
func TestOrderPriceFrozen(t *testing.T) {
	setupOrderTestDB(t)
	user := createTestUser(t, "order4@example.com")
	product := createTestProduct(t, "Volatile Product", "100.00", 10)

	_, err := AddItem(user, product.ID, 2)
	assert.NoError(t, err)
	order, err := CreateOrderFromCart(user)
	assert.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(200)))

	// Price doubles after the order
	assert.NoError(t, database.DB.Model(&models.Product{}).
		Where("id = ?", product.ID).
		UpdateColumn("price", decimal.RequireFromString("200.00")).Error)

	reloaded, err := GetOrderByID(user, order.ID)
	assert.NoError(t, err)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.NewFromInt(200)))
	assert.Len(t, reloaded.Items, 1)
	assert.True(t, reloaded.Items[0].Price.Equal(decimal.NewFromInt(100)),
		"captured price should stay 100, got %s", reloaded.Items[0].Price)
}

// TestGetOrderByIDOwnership - Nonexistent ids and other users' orders are
// both NotFound
func TestGetOrderByIDOwnership(t *testing.T) {
	setupOrderTestDB(t)
	owner := createTestUser(t, "owner@example.com")
	stranger := createTestUser(t, "stranger@example.com")
	product := createTestProduct(t, "Product", "10.00", 10)

	_, err := AddItem(owner, product.ID, 1)
	assert.NoError(t, err)
	order, err := CreateOrderFromCart(owner)
	assert.NoError(t, err)

	// Owner can read it
	got, err := GetOrderByID(owner, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// A different user gets NotFound, same as a nonexistent id
	var svcErr *Error
	_, err = GetOrderByID(stranger, order.ID)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)

	_, err = GetOrderByID(owner, 9999)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
}

// TestGetUserOrders - Lists only the calling user's orders
func TestGetUserOrders(t *testing.T) {
	setupOrderTestDB(t)
	alice := createTestUser(t, "alice@example.com")
	bob := createTestUser(t, "bob@example.com")
	product := createTestProduct(t, "Product", "10.00", 10)

	_, err := AddItem(alice, product.ID, 1)
	assert.NoError(t, err)
	_, err = CreateOrderFromCart(alice)
	assert.NoError(t, err)

	aliceOrders, err := GetUserOrders(alice)
	assert.NoError(t, err)
	assert.Len(t, aliceOrders, 1)
	assert.Len(t, aliceOrders[0].Items, 1)

	bobOrders, err := GetUserOrders(bob)
	assert.NoError(t, err)
	assert.Empty(t, bobOrders)
}
