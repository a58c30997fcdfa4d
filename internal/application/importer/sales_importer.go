package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/domain/reconcile"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// SalesImporter transforms the sales register and GSTR1 staging rows of a
// date window into sales, sales-return and claim-service ledger rows.
type SalesImporter struct{}

// NewSalesImporter creates a new SalesImporter
func NewSalesImporter() *SalesImporter {
	return &SalesImporter{}
}

func (i *SalesImporter) Name() string { return "sales" }

func (i *SalesImporter) Descriptors() []report.Descriptor {
	return []report.Descriptor{report.SalesRegisterReport, report.GSTR1Report}
}

func (i *SalesImporter) ArgKind() report.ArgKind { return report.ArgDateRange }

// Run replaces the window's sales-owned ledger rows with rows reconciled
// from the current staging snapshot. Everything happens in one transaction:
// snapshot reads, the range delete and the inserts commit or roll back
// together.
func (i *SalesImporter) Run(ctx context.Context, scope TransactionScope, tenantID uuid.UUID, args report.Args) (Outcome, error) {
	window, ok := args.(report.DateRangeArgs)
	if !ok {
		return Outcome{}, fmt.Errorf("sales importer: %w: want date range args, got %s", ledger.ErrInvalidInput, args.ArgKind())
	}

	var out Outcome
	err := scope.Execute(ctx, func(repos Repositories) error {
		registerRows, err := repos.Reports().SalesRegisterWindow(ctx, tenantID, window.From, window.To)
		if err != nil {
			return fmt.Errorf("read sales register: %w", err)
		}
		inventoryRows, err := repos.Reports().GSTR1Window(ctx, tenantID, window.From, window.To)
		if err != nil {
			return fmt.Errorf("read gstr1: %w", err)
		}

		deleted, err := repos.Ledger().DeleteEntriesInRange(ctx, tenantID, window.From, window.To, ledger.SalesEntryTypes())
		if err != nil {
			return fmt.Errorf("delete window: %w", err)
		}

		res := reconcile.ReconcileSales(tenantID, registerRows, inventoryRows)

		if err := repos.Ledger().InsertEntries(ctx, res.Entries); err != nil {
			return fmt.Errorf("insert entries: %w", err)
		}
		if err := repos.Ledger().InsertDiscounts(ctx, res.Discounts); err != nil {
			return fmt.Errorf("insert discounts: %w", err)
		}
		if err := repos.Ledger().InsertInventory(ctx, res.Inventory); err != nil {
			return fmt.Errorf("insert inventory: %w", err)
		}

		out = Outcome{
			EntriesInserted:   len(res.Entries),
			DiscountsInserted: len(res.Discounts),
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

var _ Importer = (*SalesImporter)(nil)
