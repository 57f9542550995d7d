package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/yukikurage/erp-api/internal/constants"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/repository"
)

// ReportService computes read-only aggregates for the dashboard and reports.
type ReportService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	txRepo      repository.TransactionRepository
}

// NewReportService creates a new ReportService.
func NewReportService(productRepo repository.ProductRepository, userRepo repository.UserRepository, txRepo repository.TransactionRepository) *ReportService {
	return &ReportService{
		productRepo: productRepo,
		userRepo:    userRepo,
		txRepo:      txRepo,
	}
}

type DashboardStats struct {
	TotalProducts int64
	LowStockCount int64
	ActiveUsers   int64
	Revenue       decimal.Decimal
}

type ReportsData struct {
	TotalInventoryValue decimal.Decimal
	Transactions        []models.FinanceTransaction
}

// DashboardStats returns headline numbers for the caller's organization; nil
// without a session.
func (s *ReportService) DashboardStats(ctx context.Context, actor *TenantUser) (*DashboardStats, error) {
	if actor == nil {
		return nil, nil
	}
	orgID := actor.OrganizationID()

	totalProducts, err := s.productRepo.Count(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	lowStock, err := s.productRepo.CountBelowQuantity(ctx, orgID, constants.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to count low stock products: %w", err)
	}
	activeUsers, err := s.userRepo.CountByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	revenue, err := s.txRepo.SumByType(ctx, orgID, models.TransactionIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return &DashboardStats{
		TotalProducts: totalProducts,
		LowStockCount: lowStock,
		ActiveUsers:   activeUsers,
		Revenue:       revenue,
	}, nil
}

// ReportsData returns inventory valuation (sum of price × quantity) and the
// transaction history oldest first; nil without a session.
func (s *ReportService) ReportsData(ctx context.Context, actor *TenantUser) (*ReportsData, error) {
	if actor == nil {
		return nil, nil
	}
	orgID := actor.OrganizationID()

	products, err := s.productRepo.ListAll(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	value := decimal.Zero
	for _, p := range products {
		value = value.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	txs, err := s.txRepo.ListAllChronological(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ReportsData{
		TotalInventoryValue: value,
		Transactions:        txs,
	}, nil
}
