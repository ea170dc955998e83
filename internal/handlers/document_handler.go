package handlers

import (
	"errors"
	"log/slog"

	"github.com/enterpriserag/backend/internal/dto"
	"github.com/enterpriserag/backend/internal/services"
	"github.com/enterpriserag/backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	tenantID, err := tenant.GetTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Unauthorized",
		})
	}
	userID, err := tenant.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Unauthorized",
		})
	}

	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	doc, err := h.documentService.Create(tenantID, userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Detail: err.Error(),
			})
		}
		slog.Error("document create failed", "error", err, "tenant_id", tenantID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *DocumentHandler) List(c *fiber.Ctx) error {
	tenantID, err := tenant.GetTenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Detail: "Unauthorized",
		})
	}

	docs, err := h.documentService.List(tenantID)
	if err != nil {
		slog.Error("document list failed", "error", err, "tenant_id", tenantID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "Internal server error",
		})
	}

	return c.JSON(docs)
}
