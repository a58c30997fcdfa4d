package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// StockImporter merges the stock rate staging snapshot into the stock master
// by natural key. Rows absent from the snapshot are left untouched.
type StockImporter struct{}

// NewStockImporter creates a new StockImporter
func NewStockImporter() *StockImporter {
	return &StockImporter{}
}

func (i *StockImporter) Name() string { return "stock" }

func (i *StockImporter) Descriptors() []report.Descriptor {
	return []report.Descriptor{report.StockRateReport}
}

func (i *StockImporter) ArgKind() report.ArgKind { return report.ArgEmpty }

func (i *StockImporter) Run(ctx context.Context, scope TransactionScope, tenantID uuid.UUID, args report.Args) (Outcome, error) {
	if args.ArgKind() != report.ArgEmpty {
		return Outcome{}, fmt.Errorf("stock importer: %w: want empty args, got %s", ledger.ErrInvalidInput, args.ArgKind())
	}

	var out Outcome
	err := scope.Execute(ctx, func(repos Repositories) error {
		rows, err := repos.Reports().StockRates(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("read stock rates: %w", err)
		}
		masters := make([]ledger.StockMaster, len(rows))
		for n, r := range rows {
			masters[n] = ledger.StockMaster{TenantID: tenantID, StockID: r.StockID, HSN: r.HSN, Rate: r.Rate}
		}
		upserted, err := repos.Masters().UpsertStocks(ctx, masters)
		if err != nil {
			return fmt.Errorf("upsert stocks: %w", err)
		}
		out = Outcome{RowsUpserted: upserted}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}
	return out, nil
}

var _ Importer = (*StockImporter)(nil)

// PartyImporter merges the party staging snapshot into the party master by
// natural key.
type PartyImporter struct{}

// NewPartyImporter creates a new PartyImporter
func NewPartyImporter() *PartyImporter {
	return &PartyImporter{}
}

func (i *PartyImporter) Name() string { return "party" }

func (i *PartyImporter) Descriptors() []report.Descriptor {
	return []report.Descriptor{report.PartyReport}
}

func (i *PartyImporter) ArgKind() report.ArgKind { return report.ArgEmpty }

func (i *PartyImporter) Run(ctx context.Context, scope TransactionScope, tenantID uuid.UUID, args report.Args) (Outcome, error) {
	if args.ArgKind() != report.ArgEmpty {
		return Outcome{}, fmt.Errorf("party importer: %w: want empty args, got %s", ledger.ErrInvalidInput, args.ArgKind())
	}

	var out Outcome
	err := scope.Execute(ctx, func(repos Repositories) error {
		rows, err := repos.Reports().Parties(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("read parties: %w", err)
		}
		masters := make([]ledger.PartyMaster, len(rows))
		for n, r := range rows {
			masters[n] = ledger.PartyMaster{
				TenantID:   tenantID,
				Code:       r.Code,
				Name:       r.Name,
				Address:    r.Address,
				MasterCode: r.MasterCode,
				Phone:      r.Phone,
				TaxID:      r.TaxID,
			}
		}
		upserted, err := repos.Masters().UpsertParties(ctx, masters)
		if err != nil {
			return fmt.Errorf("upsert parties: %w", err)
		}
		out = Outcome{RowsUpserted: upserted}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}
	return out, nil
}

var _ Importer = (*PartyImporter)(nil)
