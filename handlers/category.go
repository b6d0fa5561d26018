// category.go - Handles category listing and admin category CRUD

package handlers

import (
	"net/http"
	"strconv"

	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
)

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"` // Category name (required)
	Description string `json:"description"`             // Optional description
}

type UpdateCategoryInput struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
}

// parseIDParam - Parses the :id path parameter as a uint
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		FailWith(c, http.StatusNotFound, "Record not found")
		return 0, false
	}
	return uint(id), true
}

func GetCategories(c *gin.Context) { // Handler for listing all categories
	categories, err := services.GetAllCategories()
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Categories", categories)
}

func CreateCategory(c *gin.Context) { // Admin handler for creating a category
	var input CreateCategoryInput
	if !bindJSON(c, &input) {
		return
	}

	category, err := services.CreateCategory(input.Name, input.Description)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, "Category created", category)
}

func UpdateCategory(c *gin.Context) { // Admin handler for updating a category
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateCategoryInput
	if !bindJSON(c, &input) {
		return
	}

	category, err := services.UpdateCategory(id, services.CategoryUpdate{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Category updated", category)
}

func DeleteCategory(c *gin.Context) { // Admin handler for deleting a category
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteCategory(id); err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Category deleted", nil)
}
