package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document is a tenant-owned ingested document. Rows are only ever read or
// written through the tenant scope, so cross-tenant access is impossible by
// construction.
type Document struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID   string         `gorm:"size:50;not null;index" json:"tenant_id"`
	UploadedBy uuid.UUID      `gorm:"type:uuid;not null" json:"uploaded_by"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	Source     string         `gorm:"size:255" json:"source"`
	Metadata   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
