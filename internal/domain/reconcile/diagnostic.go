// Package reconcile contains the pure transformation core: it turns report
// snapshot rows into ledger entries, discount line items and inventory line
// items. Functions here touch no storage and no logger; anything worth
// reporting comes back as a Diagnostic.
package reconcile

import (
	"fmt"
	"time"
)

// Diagnostic codes.
const (
	CodeUnmatchedCreditNote = "unmatched_credit_note"
	CodeMissingStockRate    = "missing_stock_rate"
)

// Diagnostic is a non-fatal finding made during reconciliation, e.g. a return
// row with no credit note to match or a market return whose stock has no
// rate. The run proceeds; the caller decides how loudly to report it.
type Diagnostic struct {
	Code      string
	InvoiceNo string
	StockID   string
	Date      time.Time
	Message   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}
