// order.go - Handles order placement and order reads
// POST /orders runs the checkout: the user's cart becomes an immutable
// order, stock is decremented and the cart is emptied, all in one
// transaction inside the order service.

package handlers

import (
	"net/http"

	"go-shop-backend/middleware"
	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
)

func CreateOrder(c *gin.Context) { // Handler for checkout
	user, ok := middleware.CurrentUser(c)
	if !ok {
		FailWith(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	order, err := services.CreateOrderFromCart(user)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, "Order created", order)
}

func GetOrders(c *gin.Context) { // Handler for listing the user's orders
	user, ok := middleware.CurrentUser(c)
	if !ok {
		FailWith(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := services.GetUserOrders(user)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Orders", orders)
}

func GetOrder(c *gin.Context) { // Handler for a single order (owner only)
	user, ok := middleware.CurrentUser(c)
	if !ok {
		FailWith(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := services.GetOrderByID(user, id)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Order", order)
}
