// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	Port          string // HTTP listen port
	DBPath        string // Path to the SQLite database file
	JWTSecret     string // Secret key for JWT authentication
	CreateAdmin   bool   // Whether to bootstrap a default admin user
	AdminEmail    string // Default admin email (used only when CreateAdmin is set)
	AdminPassword string // Default admin password (used only when CreateAdmin is set)
	SeedDemoData  bool   // Whether to seed the demo catalog on startup
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present (missing file is fine)

	return &Config{
		Port:          getEnv("PORT", "8080"),                    // Get HTTP port or use default
		DBPath:        getEnv("DB_PATH", "shop.db"),              // Get DB path or use default
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"),       // Get JWT secret or use default
		CreateAdmin:   getEnv("CREATE_ADMIN", "") == "true",      // Admin bootstrap is opt-in
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@test.com"),   // Default admin email
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),      // Default admin password
		SeedDemoData:  getEnv("SEED_DEMO_DATA", "") == "true",    // Demo catalog seed is opt-in
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
