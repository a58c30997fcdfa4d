package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/infrastructure/persistence/models"
)

const (
	// deleteBatchSize bounds the IN lists of the windowed delete.
	deleteBatchSize = 100
	// insertBatchSize bounds multi-row inserts.
	insertBatchSize = 1000
)

// GormLedgerRepository implements ledger.Repository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// DeleteEntriesInRange removes the tenant's entries of the given types inside
// [from, to], together with the discount and inventory line items of the
// deleted invoices. Deletes go out in primary-key batches so a large window
// never produces an unbounded statement.
func (r *GormLedgerRepository) DeleteEntriesInRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time, types []ledger.EntryType) (int64, error) {
	typeStrings := make([]string, len(types))
	for i, t := range types {
		typeStrings[i] = string(t)
	}

	var victims []models.LedgerEntryModel
	if err := r.db.WithContext(ctx).
		Select("id", "invoice_no").
		Where("tenant_id = ? AND date >= ? AND date <= ? AND type IN ?", tenantID, from, to, typeStrings).
		Find(&victims).Error; err != nil {
		return 0, err
	}
	if len(victims) == 0 {
		return 0, nil
	}

	ids := make([]uint, len(victims))
	invoiceSet := make(map[string]struct{}, len(victims))
	for i, v := range victims {
		ids[i] = v.ID
		invoiceSet[v.InvoiceNo] = struct{}{}
	}
	invoices := make([]string, 0, len(invoiceSet))
	for inv := range invoiceSet {
		invoices = append(invoices, inv)
	}

	var deleted int64
	for start := 0; start < len(ids); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(ids))
		res := r.db.WithContext(ctx).
			Where("id IN ?", ids[start:end]).
			Delete(&models.LedgerEntryModel{})
		if res.Error != nil {
			return deleted, res.Error
		}
		deleted += res.RowsAffected
	}

	for start := 0; start < len(invoices); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(invoices))
		chunk := invoices[start:end]
		if err := r.db.WithContext(ctx).
			Where("tenant_id = ? AND invoice_no IN ?", tenantID, chunk).
			Delete(&models.DiscountLineItemModel{}).Error; err != nil {
			return deleted, err
		}
		if err := r.db.WithContext(ctx).
			Where("tenant_id = ? AND invoice_no IN ?", tenantID, chunk).
			Delete(&models.InventoryLineItemModel{}).Error; err != nil {
			return deleted, err
		}
	}

	return deleted, nil
}

// InsertEntries persists ledger entries in batches.
func (r *GormLedgerRepository) InsertEntries(ctx context.Context, entries []ledger.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]models.LedgerEntryModel, len(entries))
	for i, e := range entries {
		rows[i] = models.LedgerEntryModelFromDomain(e)
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error
}

// InsertDiscounts persists discount line items in batches.
func (r *GormLedgerRepository) InsertDiscounts(ctx context.Context, items []ledger.DiscountLineItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]models.DiscountLineItemModel, len(items))
	for i, d := range items {
		rows[i] = models.DiscountLineItemModelFromDomain(d)
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error
}

// InsertInventory persists inventory line items in batches.
func (r *GormLedgerRepository) InsertInventory(ctx context.Context, items []ledger.InventoryLineItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]models.InventoryLineItemModel, len(items))
	for i, item := range items {
		rows[i] = models.InventoryLineItemModelFromDomain(item)
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error
}

// LatestPartyTaxID returns the tax id on the party's most recent entry.
func (r *GormLedgerRepository) LatestPartyTaxID(ctx context.Context, tenantID uuid.UUID, partyID string) (*string, error) {
	var model models.LedgerEntryModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND party_id = ?", tenantID, partyID).
		Order("date DESC, id DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, err
	}
	return model.TaxID, nil
}

// Ensure GormLedgerRepository implements ledger.Repository
var _ ledger.Repository = (*GormLedgerRepository)(nil)
