// cart_test.go - Automated tests for the cart service
// Run with: go test ./...

package services

import (
	"os"      // For file operations
	"testing" // Go's testing package

	"go-shop-backend/database" // Database connection
	"go-shop-backend/models"   // Database models

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert" // For assertions
	"golang.org/x/crypto/bcrypt"
)

// setupCartTestDB removes any existing test DB and creates a new one for each test run
func setupCartTestDB(t *testing.T) {
	_ = os.Remove("test_cart.db")                            // Remove old test DB if exists
	assert.NoError(t, database.Connect("test_cart.db"))      // Connect and migrate
	t.Cleanup(func() { _ = os.Remove("test_cart.db") })      // Drop the file afterwards
}

// createTestUser - Inserts a user with a hashed password
func createTestUser(t *testing.T, email string) models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("testpass123"), bcrypt.DefaultCost)
	user := models.User{Name: "Test User", Email: email, Password: string(hash), Role: "user"}
	assert.NoError(t, database.DB.Create(&user).Error)
	return user
}

// createTestProduct - Inserts a category (if needed) and a product under it
func createTestProduct(t *testing.T, name, price string, stock int) models.Product {
	category := models.Category{Name: "Test Category"}
	assert.NoError(t, database.DB.FirstOrCreate(&category, models.Category{Name: "Test Category"}).Error)
	product := models.Product{
		Name:          name,
		Description:   name + " description",
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		CategoryID:    category.ID,
	}
	assert.NoError(t, database.DB.Create(&product).Error)
	return product
}

// cartQuantity - Reads the stored quantity for a product line (0 if absent)
func cartQuantity(t *testing.T, user models.User, productID uint) int {
	cart, err := GetOrCreateCart(user)
	assert.NoError(t, err)
	for _, item := range cart.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// TestAddItemIncrementsExistingLine - Re-adding a product increments the
// line instead of duplicating it, and the stock check covers the sum
func TestAddItemIncrementsExistingLine(t *testing.T) {
	setupCartTestDB(t)
	user := createTestUser(t, "cart1@example.com")
	product := createTestProduct(t, "Widget", "10.00", 5)

	// First add creates the line
	cart, err := AddItem(user, product.ID, 2)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// Second add increments it
	cart, err = AddItem(user, product.ID, 3)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// A further add would push the total past stock (5) and must fail
	_, err = AddItem(user, product.ID, 1)
	var svcErr *Error
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindBusinessRule, svcErr.Kind)

	// The stored quantity is unchanged by the failed add
	assert.Equal(t, 5, cartQuantity(t, user, product.ID))
}

// TestCreateCartLostRaceFallsBackToLoad - When the cart insert loses the
// first-access race (the user_id unique index rejects it because another
// request already created the cart), the existing cart is returned instead
// of the constraint error
func TestCreateCartLostRaceFallsBackToLoad(t *testing.T) {
	setupCartTestDB(t)
	user := createTestUser(t, "cart-race@example.com")

	// Another request's cart already exists when the insert runs
	existing := models.Cart{UserID: user.ID}
	assert.NoError(t, database.DB.Create(&existing).Error)

	cart, err := createCart(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, cart.ID)

	// Still exactly one cart row for the user
	var count int64
	database.DB.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestAddItemUnknownProduct - Adding a nonexistent product is a NotFound failure
func TestAddItemUnknownProduct(t *testing.T) {
	setupCartTestDB(t)
	user := createTestUser(t, "cart2@example.com")

	_, err := AddItem(user, 9999, 1)
	var svcErr *Error
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
}

// TestUpdateItemSetsQuantity - Update replaces the quantity rather than adding
func TestUpdateItemSetsQuantity(t *testing.T) {
	setupCartTestDB(t)
	user := createTestUser(t, "cart3@example.com")
	product := createTestProduct(t, "Widget", "10.00", 10)

	_, err := AddItem(user, product.ID, 2)
	assert.NoError(t, err)

	cart, err := UpdateItem(user, product.ID, 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

// TestUpdateItemOverStockLeavesQuantityUnchanged - An update beyond live
// stock fails and the stored quantity stays as it was
func TestUpdateItemOverStockLeavesQuantityUnchanged(t *testing.T) {
	setupCartTestDB(t)
	user := createTestUser(t, "cart4@example.com")
	product := createTestProduct(t, "Widget", "10.00", 5)

	_, err := AddItem(user, product.ID, 2)
	assert.NoError(t, err)

	_, err = UpdateItem(user, product.ID, 6) // Stock is only 5
	var svcErr *Error
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindBusinessRule, svcErr.Kind)

	assert.Equal(t, 2, cartQuantity(t, user, product.ID))
}

// TestUpdateItemNotFoundCases - Missing cart and missing line are both NotFound
func TestUpdateItemNotFoundCases(t *testing.T) {
	setupCartTestDB(t)
	user := createTestUser(t, "cart5@example.com")
	product := createTestProduct(t, "Widget", "10.00", 5)

	// No cart yet
	_, err := UpdateItem(user, product.ID, 1)
	var svcErr *Error
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)

	// Cart exists, line doesn't
	_, err = GetOrCreateCart(user)
	assert.NoError(t, err)
	_, err = UpdateItem(user, product.ID, 1)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
}

// TestRemoveAndClear - Removing a line, clearing the cart, and their NotFound paths
func TestRemoveAndClear(t *testing.T) {
	setupCartTestDB(t)
	user := createTestUser(t, "cart6@example.com")
	product := createTestProduct(t, "Widget", "10.00", 5)

	// Both fail before any cart exists
	var svcErr *Error
	err := RemoveItem(user, product.ID)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
	err = ClearCart(user)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)

	_, err = AddItem(user, product.ID, 2)
	assert.NoError(t, err)

	// Removing a product that isn't in the cart is NotFound
	other := createTestProduct(t, "Gadget", "20.00", 5)
	err = RemoveItem(user, other.ID)
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)

	// Removing the real line succeeds
	assert.NoError(t, RemoveItem(user, product.ID))
	assert.Equal(t, 0, cartQuantity(t, user, product.ID))

	// Clearing works and the cart row survives
	_, err = AddItem(user, product.ID, 1)
	assert.NoError(t, err)
	assert.NoError(t, ClearCart(user))
	cart, err := GetOrCreateCart(user)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}
