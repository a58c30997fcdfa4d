package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/infrastructure/persistence/models"
)

// upsertBatchSize bounds multi-row ON CONFLICT inserts.
const upsertBatchSize = 2000

// GormMasterRepository implements ledger.MasterRepository using GORM
type GormMasterRepository struct {
	db *gorm.DB
}

// NewGormMasterRepository creates a new GormMasterRepository
func NewGormMasterRepository(db *gorm.DB) *GormMasterRepository {
	return &GormMasterRepository{db: db}
}

// UpsertStocks merges stock rows on (tenant_id, stock_id).
func (r *GormMasterRepository) UpsertStocks(ctx context.Context, rows []ledger.StockMaster) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	batch := make([]models.StockMasterModel, len(rows))
	for i, s := range rows {
		batch[i] = models.StockMasterModelFromDomain(s)
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "stock_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"hsn", "rate", "updated_at"}),
		}).
		CreateInBatches(batch, upsertBatchSize)
	return res.RowsAffected, res.Error
}

// UpsertParties merges party rows on (tenant_id, code).
func (r *GormMasterRepository) UpsertParties(ctx context.Context, rows []ledger.PartyMaster) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	batch := make([]models.PartyMasterModel, len(rows))
	for i, p := range rows {
		batch[i] = models.PartyMasterModelFromDomain(p)
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "address", "master_code", "phone", "tax_id", "updated_at"}),
		}).
		CreateInBatches(batch, upsertBatchSize)
	return res.RowsAffected, res.Error
}

// StockRate returns the tax rate from the stock's master row.
func (r *GormMasterRepository) StockRate(ctx context.Context, tenantID uuid.UUID, stockID string) (decimal.Decimal, error) {
	var model models.StockMasterModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND stock_id = ?", tenantID, stockID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, ledger.ErrNotFound
		}
		return decimal.Zero, err
	}
	return model.Rate, nil
}

// Ensure GormMasterRepository implements ledger.MasterRepository
var _ ledger.MasterRepository = (*GormMasterRepository)(nil)
