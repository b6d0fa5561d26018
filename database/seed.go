// seed.go - Seeds the demo catalog (users, categories, products)
// Mirrors the sample storefront data used during development. The seed is
// idempotent: it is skipped entirely when any category already exists.

package database

import (
	"go-shop-backend/models"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// demoProduct - Compact literal form for seeding products under a category
type demoProduct struct {
	name        string
	description string
	price       string // Parsed with decimal.RequireFromString
	stock       int
}

// SeedDemoData - Inserts two demo users, three categories and fifteen products
func SeedDemoData() error {
	// Skip if the catalog is already populated
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	// Demo users (one admin, one regular)
	users := []struct {
		name, email, password, role string
	}{
		{"Admin User", "admin@test.com", "admin123", "admin"},
		{"Test User", "user@test.com", "user123", "user"},
	}
	for _, u := range users {
		var existing int64
		DB.Model(&models.User{}).Where("email = ?", u.email).Count(&existing)
		if existing > 0 {
			continue // Admin may already exist from createDefaultAdmin
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{Name: u.name, Email: u.email, Password: string(hash), Role: u.role}
		if err := DB.Create(&user).Error; err != nil {
			return err
		}
	}

	// Categories with their products
	catalog := []struct {
		name        string
		description string
		products    []demoProduct
	}{
		{
			name:        "Electronics",
			description: "Electronic products category",
			products: []demoProduct{
				{"iPhone 15 Pro", "Apple iPhone 15 Pro 256GB", "45000.00", 50},
				{"Samsung Galaxy S24", "Samsung Galaxy S24 Ultra 512GB", "40000.00", 30},
				{"MacBook Pro", "Apple MacBook Pro 14\" M3", "55000.00", 20},
				{"AirPods Pro", "Apple AirPods Pro 2nd generation", "8500.00", 100},
				{"iPad Air", "Apple iPad Air 11\" M2", "25000.00", 40},
			},
		},
		{
			name:        "Clothing",
			description: "Clothing and fashion products",
			products: []demoProduct{
				{"Men's T-Shirt", "Cotton men's t-shirt", "150.00", 200},
				{"Women's Dress", "Summer women's dress", "350.00", 150},
				{"Sneakers", "Nike sneakers", "2500.00", 80},
				{"Jeans", "Classic fit jeans", "450.00", 120},
				{"Sweater", "Wool sweater", "280.00", 90},
			},
		},
		{
			name:        "Home & Living",
			description: "Home and living products",
			products: []demoProduct{
				{"Coffee Machine", "Automatic espresso machine", "3500.00", 25},
				{"Bedspread", "Cotton bedspread set", "450.00", 60},
				{"Desk Lamp", "LED desk lamp", "180.00", 100},
				{"Food Processor", "Multi-function food processor", "2800.00", 35},
				{"Carpet", "Wool carpet 200x300 cm", "1500.00", 15},
			},
		},
	}

	for _, entry := range catalog {
		category := models.Category{Name: entry.name, Description: entry.description}
		if err := DB.Create(&category).Error; err != nil {
			return err
		}
		for _, p := range entry.products {
			product := models.Product{
				Name:          p.name,
				Description:   p.description,
				Price:         decimal.RequireFromString(p.price),
				StockQuantity: p.stock,
				CategoryID:    category.ID,
			}
			if err := DB.Create(&product).Error; err != nil {
				return err
			}
		}
	}

	log.Info().Msg("seeded demo catalog data")
	return nil
}
