package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxnType classifies a register or inventory report row. Report rows use the
// source convention: positive amounts for sales, positive roundoff, etc.
type TxnType string

const (
	TxnSales        TxnType = "sales"
	TxnSalesReturn  TxnType = "salesreturn"
	TxnClaimService TxnType = "claimservice"
	TxnDamage       TxnType = "damage"
	TxnShortage     TxnType = "shortage"
)

// SalesRegisterRow is one line of the sales register report.
type SalesRegisterRow struct {
	TenantID  uuid.UUID
	Type      TxnType
	InvoiceNo string
	Date      time.Time
	PartyID   string
	TaxID     *string
	Amount    decimal.Decimal

	// Discount buckets. The enumeration is closed, see ledger.DiscountSubtypes.
	BTPR          decimal.Decimal
	Outpayment    decimal.Decimal
	UShop         decimal.Decimal
	PECom         decimal.Decimal
	OtherDiscount decimal.Decimal

	Roundoff decimal.Decimal
	TCS      decimal.Decimal
	TDS      decimal.Decimal
}

// GSTR1Row is one inventory/HSN line of the GSTR1 report. Return rows carry
// the credit-note number and the original invoice it was raised against;
// claim-service rows carry the settlement tax id.
type GSTR1Row struct {
	TenantID          uuid.UUID
	Type              TxnType
	InvoiceNo         string
	Date              time.Time
	CreditNoteNo      string
	OriginalInvoiceNo string
	TaxID             *string
	StockID           string
	Quantity          decimal.Decimal
	Rate              decimal.Decimal
	TaxableValue      decimal.Decimal
	InventoryAmount   decimal.Decimal
}

// ReturnFromMarket marks damage/shortage rows returned from the market, the
// only ones the market-return import consumes.
const ReturnFromMarket = "market"

// DamageShortageRow is one line of the damage/shortage report.
type DamageShortageRow struct {
	TenantID   uuid.UUID
	Type       TxnType
	InvoiceNo  string
	Date       time.Time
	PartyID    string
	StockID    string
	Quantity   decimal.Decimal
	Amount     decimal.Decimal
	ReturnFrom string
}

// StockRateRow is one line of the stock HSN/rate report.
type StockRateRow struct {
	TenantID uuid.UUID
	StockID  string
	HSN      string
	Rate     decimal.Decimal
}

// PartyRow is one line of the party master report.
type PartyRow struct {
	TenantID   uuid.UUID
	Code       string
	Name       string
	Address    string
	MasterCode string
	Phone      string
	TaxID      *string
}
