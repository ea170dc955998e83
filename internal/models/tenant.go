package models

import "time"

// Tenant is the organizational scope that owns users and documents.
type Tenant struct {
	ID        string    `gorm:"size:50;primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
