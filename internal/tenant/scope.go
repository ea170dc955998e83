package tenant

import "gorm.io/gorm"

// Scope returns a GORM scope that filters by tenant_id.
func Scope(tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}
