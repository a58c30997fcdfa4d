package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Venkatesh2304/myerpv2/internal/infrastructure/persistence/models"
)

// setupTestDB opens a fresh in-memory SQLite database with all tables
// migrated. SQLite is close enough for everything except the ON CONFLICT
// upserts, which get exercised against real Postgres in the integration
// suite.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.SalesRegisterRowModel{},
		&models.GSTR1RowModel{},
		&models.DamageShortageRowModel{},
		&models.StockRateRowModel{},
		&models.PartyRowModel{},
		&models.LedgerEntryModel{},
		&models.DiscountLineItemModel{},
		&models.InventoryLineItemModel{},
		&models.StockMasterModel{},
		&models.PartyMasterModel{},
	)
	require.NoError(t, err)

	return db
}
