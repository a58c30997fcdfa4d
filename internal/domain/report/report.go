// Package report models the raw source reports a tenant's ledger is derived
// from. Report rows are immutable once fetched and are replaced wholesale on
// every refresh; they live only for the duration of a refresh+import cycle.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind identifies a source report.
type Kind string

const (
	KindSalesRegister  Kind = "sales_register"
	KindGSTR1          Kind = "gstr1"
	KindDamageShortage Kind = "damage_shortage"
	KindStockRate      Kind = "stock_rate"
	KindParty          Kind = "party"
)

// ArgKind is the argument shape a report refresh expects.
type ArgKind string

const (
	ArgDateRange ArgKind = "date_range"
	ArgEmpty     ArgKind = "empty"
)

// Args is the refresh argument for a report. The set of shapes is closed:
// either an inclusive date range or nothing.
type Args interface {
	ArgKind() ArgKind
}

// DateRangeArgs selects an inclusive [From, To] date window.
type DateRangeArgs struct {
	From time.Time
	To   time.Time
}

func (DateRangeArgs) ArgKind() ArgKind { return ArgDateRange }

// EmptyArgs is used by reports refreshed without parameters.
type EmptyArgs struct{}

func (EmptyArgs) ArgKind() ArgKind { return ArgEmpty }

// Descriptor couples a report kind with the argument shape its refresh takes.
type Descriptor struct {
	Kind    Kind
	ArgKind ArgKind
}

// Descriptors for the known report kinds.
var (
	SalesRegisterReport  = Descriptor{Kind: KindSalesRegister, ArgKind: ArgDateRange}
	GSTR1Report          = Descriptor{Kind: KindGSTR1, ArgKind: ArgDateRange}
	DamageShortageReport = Descriptor{Kind: KindDamageShortage, ArgKind: ArgDateRange}
	StockRateReport      = Descriptor{Kind: KindStockRate, ArgKind: ArgEmpty}
	PartyReport          = Descriptor{Kind: KindParty, ArgKind: ArgEmpty}
)

// Fetcher refreshes a report's staging rows from the external provider.
// It returns the number of rows inserted. The transport is opaque; a failed
// fetch must leave sibling refreshes unaffected.
type Fetcher interface {
	Fetch(ctx context.Context, tenantID uuid.UUID, kind Kind, args Args) (int64, error)
}
