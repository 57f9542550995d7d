package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yukikurage/erp-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the list/sort indexes that struct tags do not declare.
func AddIndexes(db *gorm.DB, log zerolog.Logger) error {
	indexes := []struct {
		model   interface{}
		name    string
		columns string
	}{
		{&models.Product{}, "idx_products_org_created_at", "organization_id, created_at"},
		{&models.Product{}, "idx_products_org_quantity", "organization_id, quantity"},
		{&models.Employee{}, "idx_employees_org_joined_at", "organization_id, joined_at"},
		{&models.FinanceTransaction{}, "idx_finance_transactions_org_date", "organization_id, transaction_date"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			log.Debug().Str("index", idx.name).Msg("Index already exists, skipping")
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to resolve table for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("table", stmt.Schema.Table).Msg("Created index")
	}

	return nil
}
