package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/erp-api/internal/dto"
	"github.com/yukikurage/erp-api/internal/middleware"
	"github.com/yukikurage/erp-api/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetDashboard returns headline numbers. Zero without a session.
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	stats, err := h.reportService.DashboardStats(c.Request.Context(), middleware.GetTenantUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.DashboardStatsDTO{}
	if stats != nil {
		resp = dto.DashboardStatsDTO{
			TotalProducts: stats.TotalProducts,
			LowStockCount: stats.LowStockCount,
			ActiveUsers:   stats.ActiveUsers,
			Revenue:       stats.Revenue,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetReports returns inventory valuation and the full transaction history.
func (h *ReportHandler) GetReports(c *gin.Context) {
	data, err := h.reportService.ReportsData(c.Request.Context(), middleware.GetTenantUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.ReportsDTO{Transactions: []dto.TransactionDTO{}}
	if data != nil {
		resp = dto.ReportsDTO{
			TotalInventoryValue: data.TotalInventoryValue,
			Transactions:        dto.ToTransactionDTOs(data.Transactions),
		}
	}
	c.JSON(http.StatusOK, resp)
}
