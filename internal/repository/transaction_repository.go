package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/yukikurage/erp-api/internal/database"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/utils"
	"gorm.io/gorm"
)

// GormTransactionRepository is a GORM implementation of TransactionRepository
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &GormTransactionRepository{db: db}
}

// ListByOrganization lists transactions, most recent date first
func (r *GormTransactionRepository) ListByOrganization(ctx context.Context, orgID string, params utils.PaginationParams) ([]models.FinanceTransaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.FinanceTransaction{}).Scopes(database.ForOrganization(orgID))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txs []models.FinanceTransaction
	if err := query.
		Order("transaction_date DESC").
		Scopes(database.Paginate(params)).
		Find(&txs).Error; err != nil {
		return nil, 0, err
	}

	return txs, total, nil
}

// ListAllChronological lists every transaction, oldest first
func (r *GormTransactionRepository) ListAllChronological(ctx context.Context, orgID string) ([]models.FinanceTransaction, error) {
	var txs []models.FinanceTransaction
	if err := r.db.WithContext(ctx).
		Scopes(database.ForOrganization(orgID)).
		Order("transaction_date ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// Create creates a transaction
func (r *GormTransactionRepository) Create(ctx context.Context, tx *models.FinanceTransaction) error {
	return mapWriteError(r.db.WithContext(ctx).Create(tx).Error)
}

// SumByType totals the amounts of one transaction type; zero when there are none.
func (r *GormTransactionRepository) SumByType(ctx context.Context, orgID string, txType models.TransactionType) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&models.FinanceTransaction{}).
		Scopes(database.ForOrganization(orgID)).
		Where("type = ?", txType).
		Select("SUM(amount)").
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
