package reconcile

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

const (
	// TDSPercent is the withholding applied to claim-service settlements.
	TDSPercent = 2

	// ClaimSettlementPartyID is the counterparty every claim-service
	// settlement is booked against.
	ClaimSettlementPartyID = "HUL"
)

var hundred = decimal.NewFromInt(100)

// SalesResult is the output of one sales reconciliation pass.
type SalesResult struct {
	Entries     []ledger.Entry
	Discounts   []ledger.DiscountLineItem
	Inventory   []ledger.InventoryLineItem
	Diagnostics []Diagnostic
}

// creditNoteKey addresses the FIFO queue of credit notes raised on one
// original invoice on one day.
type creditNoteKey struct {
	day     string
	invoice string
}

func keyFor(date time.Time, invoice string) creditNoteKey {
	return creditNoteKey{day: date.Format("2006-01-02"), invoice: invoice}
}

// ReconcileSales matches sales-register rows against GSTR1 inventory rows
// and emits the three ledger streams.
//
// Plain sales pass through. Returns are paired by ascending amount on both
// sides: each inventory return contributes its credit note to a per-(date,
// original invoice) FIFO queue, and each register return consumes the oldest
// note for its (date, invoice) as its resolved invoice number. A register
// return with no note left keeps its original invoice number and is still
// emitted, with a diagnostic. Claim-service inventory rows are aggregated
// per invoice into one synthetic settlement entry.
func ReconcileSales(tenantID uuid.UUID, registerRows []report.SalesRegisterRow, inventoryRows []report.GSTR1Row) SalesResult {
	var res SalesResult

	var regSales, regReturns []report.SalesRegisterRow
	for _, r := range registerRows {
		switch r.Type {
		case report.TxnSales:
			regSales = append(regSales, r)
		case report.TxnSalesReturn:
			regReturns = append(regReturns, r)
		}
	}

	var invSales, invReturns, invClaims []report.GSTR1Row
	for _, r := range inventoryRows {
		switch r.Type {
		case report.TxnSales:
			invSales = append(invSales, r)
		case report.TxnSalesReturn:
			invReturns = append(invReturns, r)
		case report.TxnClaimService:
			invClaims = append(invClaims, r)
		}
	}

	// Ascending-amount ordering on both sides is what pairs a register
	// return with the credit note generated from the same original invoice.
	// It must be reproduced exactly for reproducible output.
	sort.SliceStable(regReturns, func(i, j int) bool {
		return regReturns[i].Amount.LessThan(regReturns[j].Amount)
	})
	sort.SliceStable(invReturns, func(i, j int) bool {
		return invReturns[i].InventoryAmount.LessThan(invReturns[j].InventoryAmount)
	})

	queues := make(map[creditNoteKey][]string)
	for i := range invReturns {
		row := &invReturns[i]
		key := keyFor(row.Date, row.OriginalInvoiceNo)
		if !contains(queues[key], row.CreditNoteNo) {
			queues[key] = append(queues[key], row.CreditNoteNo)
		}
		row.InvoiceNo = row.CreditNoteNo
		row.TaxableValue = row.TaxableValue.Neg()
	}

	for i := range regReturns {
		row := &regReturns[i]
		row.Roundoff = row.Roundoff.Neg()
		key := keyFor(row.Date, row.InvoiceNo)
		notes := queues[key]
		if len(notes) == 0 {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Code:      CodeUnmatchedCreditNote,
				InvoiceNo: row.InvoiceNo,
				Date:      row.Date,
				Message:   fmt.Sprintf("no credit note for register return %s on %s", row.InvoiceNo, row.Date.Format("2006-01-02")),
			})
			continue
		}
		row.InvoiceNo = notes[0]
		queues[key] = notes[1:]
	}

	claims := aggregateClaims(invClaims)

	registerStream := make([]report.SalesRegisterRow, 0, len(regSales)+len(regReturns)+len(claims))
	registerStream = append(registerStream, regSales...)
	registerStream = append(registerStream, regReturns...)
	registerStream = append(registerStream, claims...)

	for _, row := range registerStream {
		res.Entries = append(res.Entries, entryFromRegister(tenantID, row))
		for _, sub := range ledger.DiscountSubtypes() {
			value := discountValue(row, sub)
			if value.IsZero() {
				continue
			}
			res.Discounts = append(res.Discounts, ledger.DiscountLineItem{
				TenantID:  tenantID,
				InvoiceNo: row.InvoiceNo,
				Subtype:   sub,
				Amount:    value.Neg(),
			})
		}
	}

	inventoryStream := make([]report.GSTR1Row, 0, len(invSales)+len(invReturns)+len(invClaims))
	inventoryStream = append(inventoryStream, invSales...)
	inventoryStream = append(inventoryStream, invReturns...)
	inventoryStream = append(inventoryStream, invClaims...)

	for _, row := range inventoryStream {
		res.Inventory = append(res.Inventory, ledger.InventoryLineItem{
			TenantID:     tenantID,
			InvoiceNo:    row.InvoiceNo,
			StockID:      row.StockID,
			Quantity:     row.Quantity,
			Rate:         row.Rate,
			TaxableValue: row.TaxableValue,
		})
	}

	return res
}

// aggregateClaims folds claim-service inventory rows into one synthetic
// register row per invoice: amount = taxable + 2*rate% tax - TDS, with the
// settlement party fixed. Grouping order is first appearance, so output is
// stable for a stable snapshot.
func aggregateClaims(rows []report.GSTR1Row) []report.SalesRegisterRow {
	type agg struct {
		first   report.GSTR1Row
		taxable decimal.Decimal
		tax     decimal.Decimal
	}

	byInvoice := make(map[string]*agg)
	var order []string
	for _, row := range rows {
		a, ok := byInvoice[row.InvoiceNo]
		if !ok {
			a = &agg{first: row}
			byInvoice[row.InvoiceNo] = a
			order = append(order, row.InvoiceNo)
		}
		a.taxable = a.taxable.Add(row.TaxableValue)
		// CGST + SGST: twice the half-rate carried on the row.
		a.tax = a.tax.Add(row.TaxableValue.Mul(row.Rate).Mul(decimal.NewFromInt(2)).Div(hundred))
	}

	out := make([]report.SalesRegisterRow, 0, len(order))
	for _, invoice := range order {
		a := byInvoice[invoice]
		tds := a.taxable.Mul(decimal.NewFromInt(TDSPercent)).Div(hundred)
		out = append(out, report.SalesRegisterRow{
			TenantID:  a.first.TenantID,
			Type:      report.TxnClaimService,
			InvoiceNo: invoice,
			Date:      a.first.Date,
			PartyID:   ClaimSettlementPartyID,
			TaxID:     a.first.TaxID,
			Amount:    a.taxable.Add(a.tax).Sub(tds),
			TDS:       tds,
		})
	}
	return out
}

// entryFromRegister applies the ledger sign convention: amount, discount and
// TDS are negated, roundoff is copied (returns arrive already flipped), TCS
// is copied.
func entryFromRegister(tenantID uuid.UUID, row report.SalesRegisterRow) ledger.Entry {
	discount := row.BTPR.
		Add(row.Outpayment).
		Add(row.UShop).
		Add(row.PECom).
		Add(row.OtherDiscount)

	return ledger.Entry{
		TenantID:  tenantID,
		Type:      ledger.EntryType(row.Type),
		InvoiceNo: row.InvoiceNo,
		Date:      row.Date,
		PartyID:   row.PartyID,
		TaxID:     row.TaxID,
		Amount:    row.Amount.Neg(),
		Discount:  discount.Neg(),
		Roundoff:  row.Roundoff,
		TCS:       row.TCS,
		TDS:       row.TDS.Neg(),
	}
}

func discountValue(row report.SalesRegisterRow, sub ledger.DiscountSubtype) decimal.Decimal {
	switch sub {
	case ledger.DiscountBTPR:
		return row.BTPR
	case ledger.DiscountOutpayment:
		return row.Outpayment
	case ledger.DiscountUShop:
		return row.UShop
	case ledger.DiscountPECom:
		return row.PECom
	case ledger.DiscountOther:
		return row.OtherDiscount
	default:
		return decimal.Zero
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
