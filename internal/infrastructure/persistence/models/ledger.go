package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
)

// LedgerEntryModel is the persistence model for normalized ledger entries.
type LedgerEntryModel struct {
	ID        uint            `gorm:"primaryKey"`
	TenantID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_ledger_window,priority:1"`
	Type      string          `gorm:"type:varchar(20);not null;index:idx_ledger_window,priority:3"`
	InvoiceNo string          `gorm:"type:varchar(50);not null;index"`
	Date      time.Time       `gorm:"type:date;not null;index:idx_ledger_window,priority:2"`
	PartyID   string          `gorm:"type:varchar(50);not null;index"`
	TaxID     *string         `gorm:"column:tax_id;type:varchar(20)"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	Discount  decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	Roundoff  decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	TCS       decimal.Decimal `gorm:"column:tcs;type:decimal(14,3);not null;default:0"`
	TDS       decimal.Decimal `gorm:"column:tds;type:decimal(14,3);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
}

func (LedgerEntryModel) TableName() string { return "ledger_entries" }

// ToDomain converts the persistence model to a domain entry.
func (m *LedgerEntryModel) ToDomain() ledger.Entry {
	return ledger.Entry{
		TenantID:  m.TenantID,
		Type:      ledger.EntryType(m.Type),
		InvoiceNo: m.InvoiceNo,
		Date:      m.Date,
		PartyID:   m.PartyID,
		TaxID:     m.TaxID,
		Amount:    m.Amount,
		Discount:  m.Discount,
		Roundoff:  m.Roundoff,
		TCS:       m.TCS,
		TDS:       m.TDS,
	}
}

// LedgerEntryModelFromDomain creates a persistence model from a domain entry.
func LedgerEntryModelFromDomain(e ledger.Entry) LedgerEntryModel {
	return LedgerEntryModel{
		TenantID:  e.TenantID,
		Type:      string(e.Type),
		InvoiceNo: e.InvoiceNo,
		Date:      e.Date,
		PartyID:   e.PartyID,
		TaxID:     e.TaxID,
		Amount:    e.Amount,
		Discount:  e.Discount,
		Roundoff:  e.Roundoff,
		TCS:       e.TCS,
		TDS:       e.TDS,
	}
}

// DiscountLineItemModel is the persistence model for discount line items.
type DiscountLineItemModel struct {
	ID        uint            `gorm:"primaryKey"`
	TenantID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_discount_invoice,priority:1"`
	InvoiceNo string          `gorm:"type:varchar(50);not null;index:idx_discount_invoice,priority:2"`
	Subtype   string          `gorm:"type:varchar(20);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
}

func (DiscountLineItemModel) TableName() string { return "discount_line_items" }

// ToDomain converts the persistence model to a domain line item.
func (m *DiscountLineItemModel) ToDomain() ledger.DiscountLineItem {
	return ledger.DiscountLineItem{
		TenantID:  m.TenantID,
		InvoiceNo: m.InvoiceNo,
		Subtype:   ledger.DiscountSubtype(m.Subtype),
		Amount:    m.Amount,
	}
}

// DiscountLineItemModelFromDomain creates a persistence model from a domain line item.
func DiscountLineItemModelFromDomain(d ledger.DiscountLineItem) DiscountLineItemModel {
	return DiscountLineItemModel{
		TenantID:  d.TenantID,
		InvoiceNo: d.InvoiceNo,
		Subtype:   string(d.Subtype),
		Amount:    d.Amount,
	}
}

// InventoryLineItemModel is the persistence model for inventory line items.
type InventoryLineItemModel struct {
	ID           uint            `gorm:"primaryKey"`
	TenantID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_inventory_invoice,priority:1"`
	InvoiceNo    string          `gorm:"type:varchar(50);not null;index:idx_inventory_invoice,priority:2"`
	StockID      string          `gorm:"type:varchar(50);not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	Rate         decimal.Decimal `gorm:"type:decimal(5,1);not null;default:0"`
	TaxableValue decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	CreatedAt    time.Time       `gorm:"not null"`
}

func (InventoryLineItemModel) TableName() string { return "inventory_line_items" }

// ToDomain converts the persistence model to a domain line item.
func (m *InventoryLineItemModel) ToDomain() ledger.InventoryLineItem {
	return ledger.InventoryLineItem{
		TenantID:     m.TenantID,
		InvoiceNo:    m.InvoiceNo,
		StockID:      m.StockID,
		Quantity:     m.Quantity,
		Rate:         m.Rate,
		TaxableValue: m.TaxableValue,
	}
}

// InventoryLineItemModelFromDomain creates a persistence model from a domain line item.
func InventoryLineItemModelFromDomain(i ledger.InventoryLineItem) InventoryLineItemModel {
	return InventoryLineItemModel{
		TenantID:     i.TenantID,
		InvoiceNo:    i.InvoiceNo,
		StockID:      i.StockID,
		Quantity:     i.Quantity,
		Rate:         i.Rate,
		TaxableValue: i.TaxableValue,
	}
}
