package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Venkatesh2304/myerpv2/internal/application/importer"
	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/infrastructure/persistence/models"
)

func TestGormImportScope_CommitsOnSuccess(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormImportScope(db)
	tenantID := uuid.New()

	err := scope.Execute(context.Background(), func(repos importer.Repositories) error {
		return repos.Ledger().InsertEntries(context.Background(), []ledger.Entry{{
			TenantID:  tenantID,
			Type:      ledger.EntrySales,
			InvoiceNo: "INV1",
			Date:      day(t, "2026-01-05"),
			PartyID:   "P1",
			Amount:    decimal.NewFromInt(-100),
		}})
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.LedgerEntryModel{}).
		Where("tenant_id = ?", tenantID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGormImportScope_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormImportScope(db)
	tenantID := uuid.New()
	boom := errors.New("transform failed")

	err := scope.Execute(context.Background(), func(repos importer.Repositories) error {
		if err := repos.Ledger().InsertEntries(context.Background(), []ledger.Entry{{
			TenantID:  tenantID,
			Type:      ledger.EntrySales,
			InvoiceNo: "INV1",
			Date:      day(t, "2026-01-05"),
			PartyID:   "P1",
			Amount:    decimal.NewFromInt(-100),
		}}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&models.LedgerEntryModel{}).
		Where("tenant_id = ?", tenantID).Count(&count).Error)
	assert.Zero(t, count, "insert before the failure must be rolled back")
}
