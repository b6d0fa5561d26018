// product.go - Handles product listing/detail and admin product CRUD

package handlers

import (
	"net/http"
	"strconv"

	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Name          string          `json:"name" binding:"required"`        // Product name (required)
	Description   string          `json:"description"`                    // Optional description
	Price         decimal.Decimal `json:"price" binding:"required"`       // Unit price (required, non-negative)
	StockQuantity int             `json:"stock_quantity" binding:"gte=0"` // Units available (non-negative)
	CategoryID    uint            `json:"category_id" binding:"required"` // Owning category (required)
}

type UpdateProductInput struct {
	Name          *string          `json:"name" binding:"omitempty,min=1"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity" binding:"omitempty,gte=0"`
	CategoryID    *uint            `json:"category_id"`
}

// GetProducts - Handler for the filtered, paginated product listing.
// Query parameters: category_id, min_price, max_price, search, page, limit.
func GetProducts(c *gin.Context) {
	var filter services.ProductFilter

	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
	}
	if raw := c.Query("min_price"); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &price
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &price
		}
	}
	filter.Search = c.Query("search")
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	products, pagination, err := services.GetProducts(filter)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Products", gin.H{"products": products, "pagination": pagination})
}

func GetProduct(c *gin.Context) { // Handler for a single product
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := services.GetProductByID(id)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Product", product)
}

func CreateProduct(c *gin.Context) { // Admin handler for creating a product
	var input CreateProductInput
	if !bindJSON(c, &input) {
		return
	}
	if input.Price.IsNegative() {
		FailWith(c, http.StatusUnprocessableEntity, "Price must not be negative")
		return
	}

	product, err := services.CreateProduct(services.ProductInput{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		CategoryID:    input.CategoryID,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, "Product created", product)
}

func UpdateProduct(c *gin.Context) { // Admin handler for updating a product
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateProductInput
	if !bindJSON(c, &input) {
		return
	}
	if input.Price != nil && input.Price.IsNegative() {
		FailWith(c, http.StatusUnprocessableEntity, "Price must not be negative")
		return
	}

	product, err := services.UpdateProduct(id, services.ProductUpdate{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		CategoryID:    input.CategoryID,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Product updated", product)
}

func DeleteProduct(c *gin.Context) { // Admin handler for deleting a product
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteProduct(id); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Product deleted", nil)
}
