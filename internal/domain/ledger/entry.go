// Package ledger holds the normalized per-tenant ledger model: entries,
// discount line items, inventory line items and the master data they
// reference. Rows here are derived from source reports and are never
// hand-edited.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry by the transaction that produced it.
type EntryType string

const (
	EntrySales        EntryType = "sales"
	EntrySalesReturn  EntryType = "salesreturn"
	EntryClaimService EntryType = "claimservice"
	EntryDamage       EntryType = "damage"
	EntryShortage     EntryType = "shortage"
)

// SalesEntryTypes are the types owned by the sales import window.
func SalesEntryTypes() []EntryType {
	return []EntryType{EntrySales, EntrySalesReturn, EntryClaimService}
}

// MarketReturnEntryTypes are the types owned by the market-return import window.
func MarketReturnEntryTypes() []EntryType {
	return []EntryType{EntryDamage, EntryShortage}
}

// Entry is a normalized ledger transaction. Amounts follow the ledger sign
// convention: register amounts are negated on the way in, so a regular sale
// carries a negative amount.
type Entry struct {
	TenantID  uuid.UUID
	Type      EntryType
	InvoiceNo string
	Date      time.Time
	PartyID   string
	TaxID     *string
	Amount    decimal.Decimal
	Discount  decimal.Decimal
	Roundoff  decimal.Decimal
	TCS       decimal.Decimal
	TDS       decimal.Decimal
}

// DiscountSubtype is one of the fixed discount buckets carried on a sales
// register row. The set is closed; rows never carry other buckets.
type DiscountSubtype string

const (
	DiscountBTPR       DiscountSubtype = "btpr"
	DiscountOutpayment DiscountSubtype = "outpyt"
	DiscountUShop      DiscountSubtype = "ushop"
	DiscountPECom      DiscountSubtype = "pecom"
	DiscountOther      DiscountSubtype = "other_discount"
)

// DiscountSubtypes returns all buckets in emission order.
func DiscountSubtypes() []DiscountSubtype {
	return []DiscountSubtype{
		DiscountBTPR,
		DiscountOutpayment,
		DiscountUShop,
		DiscountPECom,
		DiscountOther,
	}
}

// DiscountLineItem is one non-zero discount bucket of an invoice.
// Zero-valued buckets are never materialized.
type DiscountLineItem struct {
	TenantID  uuid.UUID
	InvoiceNo string
	Subtype   DiscountSubtype
	Amount    decimal.Decimal
}

// InventoryLineItem is one stock line of an invoice.
type InventoryLineItem struct {
	TenantID     uuid.UUID
	InvoiceNo    string
	StockID      string
	Quantity     decimal.Decimal
	Rate         decimal.Decimal
	TaxableValue decimal.Decimal
}
