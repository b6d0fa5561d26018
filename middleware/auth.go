// auth.go - JWT authentication middleware
// This file implements authentication and authorization for the API
//
// Authentication Flow:
// 1. Extract JWT token from Authorization header
// 2. Validate token signature and expiration
// 3. Extract user ID from token claims
// 4. Load the user from the database and store it in context for handlers
//
// Authorization Flow (Admin):
// 1. Run authentication middleware first
// 2. Read the authenticated user from context
// 3. Check if the user has admin role
// 4. Allow/deny access based on role
//
// Handlers read the loaded user via CurrentUser and pass it explicitly into
// every service call; services never consult ambient auth state.

package middleware // Declares the package name

import ( // Import required packages
	"go-shop-backend/config"   // Project config (for JWT secret)
	"go-shop-backend/database" // Database connection (for user queries)
	"go-shop-backend/models"   // User model (for role checking)
	"net/http"                 // HTTP status codes (401, 403, etc.)
	"strings"                  // String operations (for header parsing)

	"github.com/gin-gonic/gin"     // Gin web framework (for middleware)
	"github.com/golang-jwt/jwt/v5" // JWT library (for token validation)
)

const userContextKey = "current_user" // Context key for the authenticated user

// unauthorized - Aborts the request with the 401 response envelope
func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
		"data":    nil,
		"errors":  []string{},
	})
}

// authenticate - Validates the bearer token and loads the user.
// Writes the 401 envelope and aborts the request on any failure. This helper
// never calls c.Next(), so both middlewares below can run it and still apply
// their own checks before the chain continues.
//
// How it works:
// 1. Checks for "Authorization: Bearer <token>" header
// 2. Validates JWT token signature and expiration
// 3. Extracts user ID from token claims
// 4. Loads the user row and stores it in Gin context for later use
func authenticate(c *gin.Context) (models.User, bool) {
	// STEP 1: Extract Authorization header
	header := c.GetHeader("Authorization")                     // Get Authorization header
	if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
		unauthorized(c, "Missing or invalid token") // Return 401 Unauthorized
		return models.User{}, false
	}

	// STEP 2: Parse JWT token
	tokenStr := strings.TrimPrefix(header, "Bearer ")                               // Remove 'Bearer ' prefix
	cfg := config.Load()                                                            // Load config for JWT secret
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) { // Parse JWT
		return []byte(cfg.JWTSecret), nil // Provide secret key for validation
	})
	if err != nil || !token.Valid { // If token is invalid or expired
		unauthorized(c, "Invalid token") // Return 401 Unauthorized
		return models.User{}, false
	}

	// STEP 3: Extract user ID from token claims
	// JWT stores all numbers as float64, but the database uses uint
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		unauthorized(c, "Invalid token claims")
		return models.User{}, false
	}
	userID, ok := claims["user_id"].(float64) // JWT numbers are float64
	if !ok {
		unauthorized(c, "Invalid user ID in token")
		return models.User{}, false
	}

	// STEP 4: Load the user and store it in context for handlers.
	// The DB is authoritative for the role; a stale role claim in an
	// old token never grants access.
	var user models.User
	if err := database.DB.First(&user, uint(userID)).Error; err != nil {
		unauthorized(c, "User not found")
		return models.User{}, false
	}
	c.Set(userContextKey, user) // Store the authenticated user in Gin context

	return user, true
}

// AuthMiddleware - Returns a Gin middleware function for JWT authentication
// This middleware validates JWT tokens and loads the authenticated user,
// aborting with 401 if the token is missing or invalid
func AuthMiddleware() gin.HandlerFunc { // Returns a Gin middleware function
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		if _, ok := authenticate(c); !ok {
			return // Request already aborted with 401
		}
		c.Next() // Continue to next handler (authentication successful)
	}
}

// AdminMiddleware - Returns a Gin middleware function for admin access control
// This middleware authenticates like AuthMiddleware and additionally checks
// the admin role. The role check runs BEFORE the chain continues: the
// downstream handler is never invoked for a non-admin user.
func AdminMiddleware() gin.HandlerFunc { // Returns a Gin middleware function for admin access
	return func(c *gin.Context) { // Middleware handler (runs before admin endpoints)
		// STEP 1: Authenticate the request (aborts with 401 on failure)
		user, ok := authenticate(c)
		if !ok {
			return // Exit early - authentication failed
		}

		// STEP 2: Check the authenticated user's role
		if user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin access required",
				"data":    nil,
				"errors":  []string{},
			})
			return
		}

		c.Next() // Continue to next handler (admin access granted)
	}
}

// CurrentUser - Returns the authenticated user stored by AuthMiddleware
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
