// catalog.go - Category and product catalog management
// Plain CRUD plus the filtered/paginated product listing. Every update is
// find-then-mutate-then-save; a missing target id is a NotFound failure.

package services

import (
	"errors"

	"go-shop-backend/database"
	"go-shop-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllCategories - Lists all categories
func GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := database.DB.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory - Creates a new category
func CreateCategory(name, description string) (*models.Category, error) {
	category := models.Category{Name: name, Description: description}
	if err := database.DB.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CategoryUpdate - Optional fields for a partial category update
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// UpdateCategory - Partially updates a category by id
func UpdateCategory(id uint, update CategoryUpdate) (*models.Category, error) {
	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Category not found")
		}
		return nil, err
	}
	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Description != nil {
		category.Description = *update.Description
	}
	if err := database.DB.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory - Deletes a category by id
func DeleteCategory(id uint) error {
	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Category not found")
		}
		return err
	}
	return database.DB.Delete(&category).Error
}

// ProductFilter - Query parameters for the product listing
type ProductFilter struct {
	CategoryID *uint            // Equality filter on owning category
	MinPrice   *decimal.Decimal // Inclusive lower price bound
	MaxPrice   *decimal.Decimal // Inclusive upper price bound
	Search     string           // Substring match on name (SQL LIKE)
	Page       int              // 1-based page, defaults to 1
	Limit      int              // Page size, defaults to 20
}

// Pagination - Metadata block returned alongside a product page
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// GetProducts - Lists products after applying filters and pagination,
// categories eagerly loaded
func GetProducts(filter ProductFilter) ([]models.Product, *Pagination, error) {
	query := database.DB.Model(&models.Product{}).Preload("Category")

	// Filtering
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	// Pagination defaults: page 1, limit 20
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var products []models.Product
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return products, &Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}, nil
}

// GetProductByID - Fetches a single product with its category
func GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := database.DB.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Product not found")
		}
		return nil, err
	}
	return &product, nil
}

// ProductInput - Fields for creating a product
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	CategoryID    uint
}

// CreateProduct - Creates a new product and returns it with its category loaded
func CreateProduct(input ProductInput) (*models.Product, error) {
	product := models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		CategoryID:    input.CategoryID,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Preload("Category").First(&product, product.ID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductUpdate - Optional fields for a partial product update
type ProductUpdate struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	StockQuantity *int
	CategoryID    *uint
}

// UpdateProduct - Partially updates a product by id
func UpdateProduct(id uint, update ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Product not found")
		}
		return nil, err
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.StockQuantity != nil {
		product.StockQuantity = *update.StockQuantity
	}
	if update.CategoryID != nil {
		product.CategoryID = *update.CategoryID
	}
	if err := database.DB.Save(&product).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Preload("Category").First(&product, product.ID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct - Deletes a product by id
func DeleteProduct(id uint) error {
	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Product not found")
		}
		return err
	}
	return database.DB.Delete(&product).Error
}
