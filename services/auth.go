// auth.go - User registration, login and profile updates
// Passwords are stored as bcrypt hashes. Successful registration and login
// both return a signed JWT bound to the user's ID and role.

package services

import (
	"errors"
	"time"

	"go-shop-backend/config"
	"go-shop-backend/database"
	"go-shop-backend/models"

	"github.com/golang-jwt/jwt/v5" // JWT library
	"golang.org/x/crypto/bcrypt"   // Password hashing
	"gorm.io/gorm"
)

// AuthResult - User plus the token issued for them
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// issueToken - Signs a JWT for the given user (72 hour expiry)
func issueToken(user models.User) (string, error) {
	cfg := config.Load() // Load config for JWT secret
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,                               // Add user ID to token
		"role":    user.Role,                             // Add role to token
		"exp":     time.Now().Add(time.Hour * 72).Unix(), // Set expiration (72 hours)
	})
	return token.SignedString([]byte(cfg.JWTSecret)) // Sign token
}

// Register - Creates a user with a hashed password and default role, then issues a token.
// A duplicate email is reported as a field-level validation failure; the
// unique index on users.email remains the authoritative backstop.
func Register(name, email, password string) (*AuthResult, error) {
	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, ValidationFailed(map[string]string{"email": "email is already taken"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost) // Hash password
	if err != nil {
		return nil, err
	}

	user := models.User{Name: name, Email: email, Password: string(hash), Role: "user"}
	if err := database.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	tokenString, err := issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: tokenString}, nil
}

// Login - Verifies credentials and issues a token.
// Returns (nil, nil) on a credential mismatch; the caller maps that to 401
// without distinguishing unknown email from wrong password.
func Login(email, password string) (*AuthResult, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil { // Find user by email
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil { // Check password
		return nil, nil
	}

	tokenString, err := issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: tokenString}, nil
}

// ProfileUpdate - Optional fields for a partial profile update
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// UpdateProfile - Applies a partial update to the user's own profile,
// re-hashing the password when one is supplied
func UpdateProfile(user models.User, update ProfileUpdate) (*models.User, error) {
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil && *update.Email != user.Email {
		// Email uniqueness re-checked excluding the user themselves
		var count int64
		database.DB.Model(&models.User{}).Where("email = ? AND id <> ?", *update.Email, user.ID).Count(&count)
		if count > 0 {
			return nil, ValidationFailed(map[string]string{"email": "email is already taken"})
		}
		user.Email = *update.Email
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
