// cart.go - Handles the per-user shopping cart endpoints

package handlers

import (
	"net/http"

	"go-shop-backend/middleware"
	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
)

type AddCartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`  // Product to add (required)
	Quantity  int  `json:"quantity" binding:"required,min=1"` // Units to add (>= 1)
}

type UpdateCartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`  // Product line to update (required)
	Quantity  int  `json:"quantity" binding:"required,min=1"` // New quantity (>= 1, replaces the old value)
}

func GetCart(c *gin.Context) { // Handler for fetching (or lazily creating) the cart
	user, ok := middleware.CurrentUser(c)
	if !ok {
		FailWith(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cart, err := services.GetOrCreateCart(user)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Cart", cart)
}

func AddCartItem(c *gin.Context) { // Handler for adding a product to the cart
	user, ok := middleware.CurrentUser(c)
	if !ok {
		FailWith(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input AddCartItemInput
	if !bindJSON(c, &input) {
		return
	}

	cart, err := services.AddItem(user, input.ProductID, input.Quantity)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Item added to cart", cart)
}

func UpdateCartItem(c *gin.Context) { // Handler for setting a cart line's quantity
	user, ok := middleware.CurrentUser(c)
	if !ok {
		FailWith(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input UpdateCartItemInput
	if !bindJSON(c, &input) {
		return
	}

	cart, err := services.UpdateItem(user, input.ProductID, input.Quantity)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Cart item updated", cart)
}

func RemoveCartItem(c *gin.Context) { // Handler for removing one product line
	user, ok := middleware.CurrentUser(c)
	if !ok {
		FailWith(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	if err := services.RemoveItem(user, productID); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Item removed from cart", nil)
}

func ClearCart(c *gin.Context) { // Handler for emptying the cart
	user, ok := middleware.CurrentUser(c)
	if !ok {
		FailWith(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := services.ClearCart(user); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Cart cleared", nil)
}
