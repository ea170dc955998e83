package services

import (
	"fmt"

	"github.com/enterpriserag/backend/internal/dto"
	"github.com/enterpriserag/backend/internal/models"
	"github.com/enterpriserag/backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentService struct {
	db *gorm.DB
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{db: db}
}

func (s *DocumentService) Create(tenantID string, userID uuid.UUID, req *dto.CreateDocumentRequest) (*models.Document, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	doc := models.Document{
		ID:         uuid.New(),
		TenantID:   tenantID,
		UploadedBy: userID,
		Title:      req.Title,
		Source:     req.Source,
	}
	if len(req.Metadata) > 0 {
		doc.Metadata = datatypes.JSON(req.Metadata)
	}

	if err := s.db.Create(&doc).Error; err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return &doc, nil
}

func (s *DocumentService) List(tenantID string) ([]models.Document, error) {
	var docs []models.Document
	if err := s.db.Scopes(tenant.Scope(tenantID)).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}
