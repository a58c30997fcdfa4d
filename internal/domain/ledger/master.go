package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockMaster maps a stock id to its HSN code and tax rate. The natural key
// is (tenant, stock id); HSN and rate may change over time, the id is stable.
type StockMaster struct {
	TenantID uuid.UUID
	StockID  string
	HSN      string
	Rate     decimal.Decimal
}

// PartyMaster is a counterparty record keyed by (tenant, code).
type PartyMaster struct {
	TenantID   uuid.UUID
	Code       string
	Name       string
	Address    string
	MasterCode string
	Phone      string
	TaxID      *string
}
