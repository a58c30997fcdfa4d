package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository persists ledger rows. Implementations are expected to be bound
// to a transaction when used by an importer: a delete followed by inserts
// must commit or roll back as one unit.
type Repository interface {
	// DeleteEntriesInRange removes every entry for the tenant whose date
	// falls inside [from, to] (inclusive) and whose type is in types.
	// Discount and inventory line items referencing the removed invoices
	// are removed with them.
	DeleteEntriesInRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time, types []EntryType) (int64, error)

	InsertEntries(ctx context.Context, entries []Entry) error
	InsertDiscounts(ctx context.Context, items []DiscountLineItem) error
	InsertInventory(ctx context.Context, items []InventoryLineItem) error

	// LatestPartyTaxID returns the tax id carried by the party's most
	// recent ledger entry, which may be nil. ErrNotFound when the party
	// has no ledger history at all.
	LatestPartyTaxID(ctx context.Context, tenantID uuid.UUID, partyID string) (*string, error)
}

// MasterRepository persists master data with natural-key upserts.
type MasterRepository interface {
	// UpsertStocks merges rows on (tenant, stock id), updating HSN and rate.
	UpsertStocks(ctx context.Context, rows []StockMaster) (int64, error)

	// UpsertParties merges rows on (tenant, code), updating the mutable
	// fields (name, address, master code, phone, tax id).
	UpsertParties(ctx context.Context, rows []PartyMaster) (int64, error)

	// StockRate returns the current tax rate for the stock id.
	// ErrNotFound when the stock has no master row.
	StockRate(ctx context.Context, tenantID uuid.UUID, stockID string) (decimal.Decimal, error)
}
