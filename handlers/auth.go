// auth.go - Handles user registration, login and profile endpoints

package handlers // Declares the package name

import (
	"net/http"

	"go-shop-backend/middleware"
	"go-shop-backend/services"

	"github.com/gin-gonic/gin" // Gin web framework
)

type RegisterInput struct { // Struct for registration input
	Name     string `json:"name" binding:"required,min=2"`     // Display name (required, >= 2 chars)
	Email    string `json:"email" binding:"required,email"`    // Email (required, valid format)
	Password string `json:"password" binding:"required,min=8"` // Password (required, >= 8 chars)
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required,email"` // Email (required)
	Password string `json:"password" binding:"required"`    // Password (required)
}

type UpdateProfileInput struct { // Struct for partial profile updates
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

func Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput
	if !bindJSON(c, &input) { // Parse and validate JSON input
		return
	}

	result, err := services.Register(input.Name, input.Email, input.Password)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, "User registered successfully", result)
}

func Login(c *gin.Context) { // Handler for user login
	var input LoginInput
	if !bindJSON(c, &input) {
		return
	}

	result, err := services.Login(input.Email, input.Password)
	if err != nil {
		Fail(c, err)
		return
	}
	if result == nil { // Credential mismatch (email or password)
		FailWith(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	OK(c, "Login successful", result)
}

func GetProfile(c *gin.Context) { // Handler for reading the current user's profile
	user, ok := middleware.CurrentUser(c)
	if !ok {
		FailWith(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	OK(c, "User profile", user)
}

func UpdateProfile(c *gin.Context) { // Handler for partial profile updates
	user, ok := middleware.CurrentUser(c)
	if !ok {
		FailWith(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input UpdateProfileInput
	if !bindJSON(c, &input) {
		return
	}

	updated, err := services.UpdateProfile(user, services.ProfileUpdate{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, "Profile updated", updated)
}
