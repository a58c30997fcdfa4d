package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// MarketReturnLookups resolves reference data during market-return
// reconciliation. StockRate must return ledger.ErrNotFound for unmapped
// stock; PartyTaxID returns nil (not an error) when the party has no
// ledger history.
type MarketReturnLookups struct {
	StockRate  func(ctx context.Context, stockID string) (decimal.Decimal, error)
	PartyTaxID func(ctx context.Context, partyID string) (*string, error)
}

// MarketReturnResult is the output of one market-return reconciliation pass.
type MarketReturnResult struct {
	Entries     []ledger.Entry
	Inventory   []ledger.InventoryLineItem
	Diagnostics []Diagnostic
}

// ReconcileMarketReturns enriches market-sourced damage/shortage rows with
// the stock's current tax rate and the party's most recent tax id, derives
// the tax-exclusive value, and aggregates amounts into one ledger entry per
// invoice. Rows whose stock has no rate are dropped with a diagnostic: no
// entry, no inventory line. One inventory line is emitted per surviving row.
func ReconcileMarketReturns(ctx context.Context, tenantID uuid.UUID, rows []report.DamageShortageRow, lookups MarketReturnLookups) (MarketReturnResult, error) {
	var res MarketReturnResult

	entries := make(map[string]*ledger.Entry)
	var order []string

	for _, row := range rows {
		if row.ReturnFrom != report.ReturnFromMarket {
			continue
		}

		rate, err := lookups.StockRate(ctx, row.StockID)
		if err != nil {
			if errors.Is(err, ledger.ErrNotFound) {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Code:    CodeMissingStockRate,
					StockID: row.StockID,
					Date:    row.Date,
					Message: fmt.Sprintf("stock rate not found for %s, skipping row", row.StockID),
				})
				continue
			}
			return MarketReturnResult{}, fmt.Errorf("stock rate lookup for %s: %w", row.StockID, err)
		}

		entry, ok := entries[row.InvoiceNo]
		if !ok {
			taxID, err := lookups.PartyTaxID(ctx, row.PartyID)
			if err != nil {
				return MarketReturnResult{}, fmt.Errorf("party tax id lookup for %s: %w", row.PartyID, err)
			}
			entry = &ledger.Entry{
				TenantID:  tenantID,
				Type:      ledger.EntryType(row.Type),
				InvoiceNo: row.InvoiceNo,
				Date:      row.Date,
				PartyID:   row.PartyID,
				TaxID:     taxID,
			}
			entries[row.InvoiceNo] = entry
			order = append(order, row.InvoiceNo)
		}
		entry.Amount = entry.Amount.Add(row.Amount)

		res.Inventory = append(res.Inventory, ledger.InventoryLineItem{
			TenantID:     tenantID,
			InvoiceNo:    row.InvoiceNo,
			StockID:      row.StockID,
			Quantity:     row.Quantity,
			Rate:         rate,
			TaxableValue: taxExclusive(row.Amount, rate),
		})
	}

	res.Entries = make([]ledger.Entry, 0, len(order))
	for _, invoice := range order {
		res.Entries = append(res.Entries, *entries[invoice])
	}
	return res, nil
}

// taxExclusive strips a symmetric 2x rate% tax from a gross amount:
// amount * 100 / (100 + 2*rate), rounded to 3 decimal places. A zero rate
// yields zero, matching the source convention for untaxed stock.
func taxExclusive(amount, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	denom := hundred.Add(rate.Mul(decimal.NewFromInt(2)))
	return amount.Mul(hundred).Div(denom).Round(3)
}
