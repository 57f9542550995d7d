package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yukikurage/erp-api/internal/dto"
	apierrors "github.com/yukikurage/erp-api/internal/errors"
	"github.com/yukikurage/erp-api/internal/middleware"
	"github.com/yukikurage/erp-api/internal/services"
	"github.com/yukikurage/erp-api/internal/utils"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListProducts returns the caller's products, newest first
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.inventoryService.ListProducts(c.Request.Context(), middleware.GetTenantUser(c), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(products, dto.ToProductDTO, params, total))
}

// CreateProduct adds a product to the caller's inventory
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	type CreateProductRequest struct {
		Name     string           `json:"name" binding:"required"`
		SKU      string           `json:"sku" binding:"required"`
		Quantity *int             `json:"quantity" binding:"required"`
		Price    *decimal.Decimal `json:"price" binding:"required"`
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.inventoryService.CreateProduct(c.Request.Context(), middleware.GetTenantUser(c), services.CreateProductInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Quantity: *req.Quantity,
		Price:    *req.Price,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductDTO(*product))
}

// DeleteProduct removes one of the caller's products
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	if err := h.inventoryService.DeleteProduct(c.Request.Context(), middleware.GetTenantUser(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
