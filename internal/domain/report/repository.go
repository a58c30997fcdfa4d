package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository reads and replaces report staging rows. Snapshot reads made
// inside an importer transaction must return a stable set even when a
// refresh overlaps: implementations bind to the transaction and copy the
// rows out before the transform starts.
type Repository interface {
	SalesRegisterWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]SalesRegisterRow, error)
	GSTR1Window(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]GSTR1Row, error)
	DamageShortageWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]DamageShortageRow, error)
	StockRates(ctx context.Context, tenantID uuid.UUID) ([]StockRateRow, error)
	Parties(ctx context.Context, tenantID uuid.UUID) ([]PartyRow, error)
}

// Store is the write side used by fetchers: a refresh replaces the staging
// rows wholesale, either for a date window or for the whole tenant.
type Store interface {
	ReplaceSalesRegisterWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time, rows []SalesRegisterRow) (int64, error)
	ReplaceGSTR1Window(ctx context.Context, tenantID uuid.UUID, from, to time.Time, rows []GSTR1Row) (int64, error)
	ReplaceDamageShortageWindow(ctx context.Context, tenantID uuid.UUID, from, to time.Time, rows []DamageShortageRow) (int64, error)
	ReplaceStockRates(ctx context.Context, tenantID uuid.UUID, rows []StockRateRow) (int64, error)
	ReplaceParties(ctx context.Context, tenantID uuid.UUID, rows []PartyRow) (int64, error)
}
