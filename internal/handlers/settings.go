package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/erp-api/internal/dto"
	apierrors "github.com/yukikurage/erp-api/internal/errors"
	"github.com/yukikurage/erp-api/internal/middleware"
	"github.com/yukikurage/erp-api/internal/services"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the caller's organization, or null without a session.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	org, err := h.settingsService.GetOrganization(c.Request.Context(), middleware.GetTenantUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var resp *dto.OrganizationDTO
	if org != nil {
		out := dto.ToOrganizationDTO(*org)
		resp = &out
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSettings replaces the caller's organization name, brand symbol and
// currency. The body is the whole settings form: an omitted brand_symbol
// clears the stored symbol and an omitted currency resets it to USD.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	type UpdateSettingsRequest struct {
		Name        string `json:"name" binding:"required"`
		BrandSymbol string `json:"brand_symbol"`
		Currency    string `json:"currency"`
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	org, err := h.settingsService.UpdateSettings(c.Request.Context(), middleware.GetTenantUser(c), services.UpdateSettingsInput{
		Name:        req.Name,
		BrandSymbol: req.BrandSymbol,
		Currency:    req.Currency,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org))
}
