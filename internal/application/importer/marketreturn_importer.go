package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/domain/reconcile"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// MarketReturnImporter transforms market-sourced damage/shortage staging
// rows of a date window into ledger rows, enriched with stock rates and the
// party's latest tax id.
type MarketReturnImporter struct{}

// NewMarketReturnImporter creates a new MarketReturnImporter
func NewMarketReturnImporter() *MarketReturnImporter {
	return &MarketReturnImporter{}
}

func (i *MarketReturnImporter) Name() string { return "market_return" }

func (i *MarketReturnImporter) Descriptors() []report.Descriptor {
	return []report.Descriptor{report.DamageShortageReport}
}

func (i *MarketReturnImporter) ArgKind() report.ArgKind { return report.ArgDateRange }

// Run replaces the window's damage/shortage ledger rows with rows reconciled
// from the current staging snapshot, in one transaction. Lookups resolve
// against the same transaction so a concurrent master upsert cannot split
// the snapshot.
func (i *MarketReturnImporter) Run(ctx context.Context, scope TransactionScope, tenantID uuid.UUID, args report.Args) (Outcome, error) {
	window, ok := args.(report.DateRangeArgs)
	if !ok {
		return Outcome{}, fmt.Errorf("market-return importer: %w: want date range args, got %s", ledger.ErrInvalidInput, args.ArgKind())
	}

	var out Outcome
	err := scope.Execute(ctx, func(repos Repositories) error {
		rows, err := repos.Reports().DamageShortageWindow(ctx, tenantID, window.From, window.To)
		if err != nil {
			return fmt.Errorf("read damage/shortage: %w", err)
		}

		deleted, err := repos.Ledger().DeleteEntriesInRange(ctx, tenantID, window.From, window.To, ledger.MarketReturnEntryTypes())
		if err != nil {
			return fmt.Errorf("delete window: %w", err)
		}

		lookups := reconcile.MarketReturnLookups{
			StockRate: func(ctx context.Context, stockID string) (decimal.Decimal, error) {
				return repos.Masters().StockRate(ctx, tenantID, stockID)
			},
			PartyTaxID: func(ctx context.Context, partyID string) (*string, error) {
				taxID, err := repos.Ledger().LatestPartyTaxID(ctx, tenantID, partyID)
				if errors.Is(err, ledger.ErrNotFound) {
					return nil, nil
				}
				return taxID, err
			},
		}

		res, err := reconcile.ReconcileMarketReturns(ctx, tenantID, rows, lookups)
		if err != nil {
			return fmt.Errorf("reconcile market returns: %w", err)
		}

		if err := repos.Ledger().InsertEntries(ctx, res.Entries); err != nil {
			return fmt.Errorf("insert entries: %w", err)
		}
		if err := repos.Ledger().InsertInventory(ctx, res.Inventory); err != nil {
			return fmt.Errorf("insert inventory: %w", err)
		}

		out = Outcome{
			EntriesInserted:   len(res.Entries),
			InventoryInserted: len(res.Inventory),
			Deleted:           deleted,
			Diagnostics:       res.Diagnostics,
		}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}
	return out, nil
}

var _ Importer = (*MarketReturnImporter)(nil)
