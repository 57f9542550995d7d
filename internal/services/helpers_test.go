package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/erp-api/internal/database"
	"github.com/yukikurage/erp-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a migrated in-memory database. A single connection keeps
// every goroutine on the same :memory: database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), zerolog.Nop(), gormlogger.Silent)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db, zerolog.Nop()))
	return db
}

// seedTenant creates an organization with one user of the given role.
func seedTenant(t *testing.T, db *gorm.DB, slug string, role models.Role) *TenantUser {
	t.Helper()

	org := &models.Organization{Name: "Org " + slug, Slug: slug}
	require.NoError(t, db.Create(org).Error)

	user := &models.User{
		ID:             "user-" + slug + "-" + string(role),
		Email:          slug + "-" + string(role) + "@example.com",
		OrganizationID: org.ID,
		Role:           role,
	}
	require.NoError(t, db.Omit("Organization").Create(user).Error)
	user.Organization = *org

	return newTenantUser(user)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func testContext() context.Context {
	return context.Background()
}
