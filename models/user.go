// user.go - Defines the User model for the database

package models // Declares the package name

import "time"

type User struct { // User struct represents a user in the database
	ID        uint      `gorm:"primaryKey" json:"id"`         // Unique user ID (primary key)
	Name      string    `gorm:"not null" json:"name"`         // User's display name
	Email     string    `gorm:"unique;not null" json:"email"` // User's email (must be unique, cannot be null)
	Password  string    `gorm:"not null" json:"-"`            // Hashed password (never serialized)
	Role      string    `gorm:"default:'user'" json:"role"`   // User role (user/admin)
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
