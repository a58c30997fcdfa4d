package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
	"github.com/Venkatesh2304/myerpv2/internal/infrastructure/persistence/models"
)

// GormReportRepository implements report.Repository and report.Store using
// GORM. Replace operations run on the handle they were given: a fetcher that
// needs atomicity passes a transaction.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// SalesRegisterWindow returns the tenant's sales register rows dated inside
// [from, to].
func (r *GormReportRepository) SalesRegisterWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]report.SalesRegisterRow, error) {
	var rows []models.SalesRegisterRowModel
	if err := r.windowQuery(ctx, tenantID, from, to).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]report.SalesRegisterRow, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// GSTR1Window returns the tenant's GSTR1 rows dated inside [from, to].
func (r *GormReportRepository) GSTR1Window(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]report.GSTR1Row, error) {
	var rows []models.GSTR1RowModel
	if err := r.windowQuery(ctx, tenantID, from, to).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]report.GSTR1Row, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// DamageShortageWindow returns the tenant's damage/shortage rows dated inside
// [from, to].
func (r *GormReportRepository) DamageShortageWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]report.DamageShortageRow, error) {
	var rows []models.DamageShortageRowModel
	if err := r.windowQuery(ctx, tenantID, from, to).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]report.DamageShortageRow, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// StockRates returns the tenant's full stock rate snapshot.
func (r *GormReportRepository) StockRates(ctx context.Context, tenantID uuid.UUID) ([]report.StockRateRow, error) {
	var rows []models.StockRateRowModel
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]report.StockRateRow, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// Parties returns the tenant's full party snapshot.
func (r *GormReportRepository) Parties(ctx context.Context, tenantID uuid.UUID) ([]report.PartyRow, error) {
	var rows []models.PartyRowModel
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]report.PartyRow, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// ReplaceSalesRegisterWindow swaps the tenant's sales register rows inside
// [from, to] for the given set. Delete and insert commit together.
func (r *GormReportRepository) ReplaceSalesRegisterWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time, rows []report.SalesRegisterRow) (int64, error) {
	batch := make([]models.SalesRegisterRowModel, len(rows))
	for i, row := range rows {
		batch[i] = models.SalesRegisterRowModelFromDomain(row)
	}
	return r.replaceWindow(ctx, tenantID, from, to, &models.SalesRegisterRowModel{}, batch)
}

// ReplaceGSTR1Window swaps the tenant's GSTR1 rows inside [from, to].
func (r *GormReportRepository) ReplaceGSTR1Window(ctx context.Context, tenantID uuid.UUID, from, to time.Time, rows []report.GSTR1Row) (int64, error) {
	batch := make([]models.GSTR1RowModel, len(rows))
	for i, row := range rows {
		batch[i] = models.GSTR1RowModelFromDomain(row)
	}
	return r.replaceWindow(ctx, tenantID, from, to, &models.GSTR1RowModel{}, batch)
}

// ReplaceDamageShortageWindow swaps the tenant's damage/shortage rows inside
// [from, to].
func (r *GormReportRepository) ReplaceDamageShortageWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time, rows []report.DamageShortageRow) (int64, error) {
	batch := make([]models.DamageShortageRowModel, len(rows))
	for i, row := range rows {
		batch[i] = models.DamageShortageRowModelFromDomain(row)
	}
	return r.replaceWindow(ctx, tenantID, from, to, &models.DamageShortageRowModel{}, batch)
}

// ReplaceStockRates swaps the tenant's entire stock rate snapshot.
func (r *GormReportRepository) ReplaceStockRates(ctx context.Context, tenantID uuid.UUID, rows []report.StockRateRow) (int64, error) {
	batch := make([]models.StockRateRowModel, len(rows))
	for i, row := range rows {
		batch[i] = models.StockRateRowModelFromDomain(row)
	}
	return r.replaceAll(ctx, tenantID, &models.StockRateRowModel{}, batch)
}

// ReplaceParties swaps the tenant's entire party snapshot.
func (r *GormReportRepository) ReplaceParties(ctx context.Context, tenantID uuid.UUID, rows []report.PartyRow) (int64, error) {
	batch := make([]models.PartyRowModel, len(rows))
	for i, row := range rows {
		batch[i] = models.PartyRowModelFromDomain(row)
	}
	return r.replaceAll(ctx, tenantID, &models.PartyRowModel{}, batch)
}

func (r *GormReportRepository) windowQuery(ctx context.Context, tenantID uuid.UUID, from, to time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantID, from, to)
}

func (r *GormReportRepository) replaceWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time, model any, batch any) (int64, error) {
	var inserted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("tenant_id = ? AND date >= ? AND date <= ?", tenantID, from, to).
			Delete(model).Error; err != nil {
			return err
		}
		res := tx.CreateInBatches(batch, insertBatchSize)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected
		return nil
	})
	return inserted, err
}

func (r *GormReportRepository) replaceAll(ctx context.Context, tenantID uuid.UUID, model any, batch any) (int64, error) {
	var inserted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", tenantID).Delete(model).Error; err != nil {
			return err
		}
		res := tx.CreateInBatches(batch, insertBatchSize)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected
		return nil
	})
	return inserted, err
}

// Ensure GormReportRepository implements both report interfaces
var (
	_ report.Repository = (*GormReportRepository)(nil)
	_ report.Store      = (*GormReportRepository)(nil)
)
