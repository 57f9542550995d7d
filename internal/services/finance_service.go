package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/repository"
	"github.com/yukikurage/erp-api/internal/utils"
)

// FinanceService handles income and expense records.
type FinanceService struct {
	txRepo repository.TransactionRepository
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(txRepo repository.TransactionRepository) *FinanceService {
	return &FinanceService{txRepo: txRepo}
}

// CreateTransactionInput represents input for recording a transaction
type CreateTransactionInput struct {
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Type        string          `json:"type" validate:"transaction_type"`
	Category    string          `json:"category" validate:"required,max=255"`
	Description string          `json:"description"`
	Date        *time.Time      `json:"date"`
}

func (in CreateTransactionInput) validate() (*models.FinanceTransaction, error) {
	in.Type = strings.ToUpper(strings.TrimSpace(in.Type))
	in.Category = strings.TrimSpace(in.Category)

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	tx := &models.FinanceTransaction{
		Amount:      in.Amount,
		Type:        models.TransactionType(in.Type),
		Category:    in.Category,
		Description: strings.TrimSpace(in.Description),
	}
	if in.Date != nil {
		tx.Date = *in.Date
	}
	return tx, nil
}

// FinanceSummary is the income/expense overview of one organization.
type FinanceSummary struct {
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	NetProfit decimal.Decimal
}

// ListTransactions returns the caller's transactions; empty without a session.
func (s *FinanceService) ListTransactions(ctx context.Context, actor *TenantUser, params utils.PaginationParams) ([]models.FinanceTransaction, int64, error) {
	if actor == nil {
		return []models.FinanceTransaction{}, 0, nil
	}

	txs, total, err := s.txRepo.ListByOrganization(ctx, actor.OrganizationID(), params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, total, nil
}

// CreateTransaction records a transaction for the caller's organization.
func (s *FinanceService) CreateTransaction(ctx context.Context, actor *TenantUser, input CreateTransactionInput) (*models.FinanceTransaction, error) {
	if err := requireTenant(actor); err != nil {
		return nil, err
	}

	tx, err := input.validate()
	if err != nil {
		return nil, err
	}
	tx.OrganizationID = actor.OrganizationID()

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}

// Summary totals income and expenses; nil without a session.
func (s *FinanceService) Summary(ctx context.Context, actor *TenantUser) (*FinanceSummary, error) {
	if actor == nil {
		return nil, nil
	}

	income, err := s.txRepo.SumByType(ctx, actor.OrganizationID(), models.TransactionIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}
	expenses, err := s.txRepo.SumByType(ctx, actor.OrganizationID(), models.TransactionExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &FinanceSummary{
		Income:    income,
		Expenses:  expenses,
		NetProfit: income.Sub(expenses),
	}, nil
}
