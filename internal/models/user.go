package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a persisted account. Email is stored normalized (lowercased and
// trimmed); the unique index enforces uniqueness at the storage layer on top
// of the lookup-before-insert check in the auth service.
type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword string         `gorm:"not null" json:"-"`
	TenantID       string         `gorm:"size:50;not null;index" json:"tenant_id"`
	Role           string         `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
