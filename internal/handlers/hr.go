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

type HRHandler struct {
	hrService *services.HRService
}

func NewHRHandler(hrService *services.HRService) *HRHandler {
	return &HRHandler{hrService: hrService}
}

func (h *HRHandler) ListEmployees(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	employees, total, err := h.hrService.ListEmployees(c.Request.Context(), middleware.GetTenantUser(c), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(employees, dto.ToEmployeeDTO, params, total))
}

// CreateEmployee onboards a staff member. EMPLOYEE callers are rejected by the
// service.
func (h *HRHandler) CreateEmployee(c *gin.Context) {
	type CreateEmployeeRequest struct {
		FirstName  string           `json:"first_name" binding:"required"`
		LastName   string           `json:"last_name" binding:"required"`
		Email      string           `json:"email" binding:"required"`
		Role       string           `json:"role" binding:"required"`
		Department string           `json:"department" binding:"required"`
		Salary     *decimal.Decimal `json:"salary" binding:"required"`
		JoinedAt   *time.Time       `json:"joined_at"`
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.hrService.CreateEmployee(c.Request.Context(), middleware.GetTenantUser(c), services.CreateEmployeeInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
		Salary:     *req.Salary,
		JoinedAt:   req.JoinedAt,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeDTO(*employee))
}
