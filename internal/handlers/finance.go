package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yukikurage/erp-api/internal/dto"
	apierrors "github.com/yukikurage/erp-api/internal/errors"
	"github.com/yukikurage/erp-api/internal/middleware"
	"github.com/yukikurage/erp-api/internal/services"
	"github.com/yukikurage/erp-api/internal/utils"
)

type FinanceHandler struct {
	financeService *services.FinanceService
}

func NewFinanceHandler(financeService *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// ListTransactions returns the caller's transactions, newest first
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	txs, total, err := h.financeService.ListTransactions(c.Request.Context(), middleware.GetTenantUser(c), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(txs, dto.ToTransactionDTO, params, total))
}

// CreateTransaction records income or an expense
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	type CreateTransactionRequest struct {
		Amount      *decimal.Decimal `json:"amount" binding:"required"`
		Type        string           `json:"type" binding:"required"`
		Category    string           `json:"category" binding:"required"`
		Description string           `json:"description"`
		Date        *time.Time       `json:"date"`
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tx, err := h.financeService.CreateTransaction(c.Request.Context(), middleware.GetTenantUser(c), services.CreateTransactionInput{
		Amount:      *req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionDTO(*tx))
}

// GetSummary returns income, expenses and net profit. Zero without a session.
func (h *FinanceHandler) GetSummary(c *gin.Context) {
	summary, err := h.financeService.Summary(c.Request.Context(), middleware.GetTenantUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.FinanceSummaryDTO{}
	if summary != nil {
		resp = dto.FinanceSummaryDTO{
			Income:    summary.Income,
			Expenses:  summary.Expenses,
			NetProfit: summary.NetProfit,
		}
	}
	c.JSON(http.StatusOK, resp)
}
