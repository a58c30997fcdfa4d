// Package models holds the GORM persistence models and their conversions
// to and from the domain types. Report staging models mirror the source
// report columns; they are replaced wholesale on every refresh.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// SalesRegisterRowModel is the staging model for sales register lines.
type SalesRegisterRowModel struct {
	ID            uint            `gorm:"primaryKey"`
	TenantID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_sales_register_window,priority:1"`
	Type          string          `gorm:"type:varchar(20);not null"`
	InvoiceNo     string          `gorm:"type:varchar(50);not null"`
	Date          time.Time       `gorm:"type:date;not null;index:idx_sales_register_window,priority:2"`
	PartyID       string          `gorm:"type:varchar(50);not null"`
	TaxID         *string         `gorm:"column:tax_id;type:varchar(20)"`
	Amount        decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	BTPR          decimal.Decimal `gorm:"column:btpr;type:decimal(14,3);not null;default:0"`
	Outpayment    decimal.Decimal `gorm:"column:outpyt;type:decimal(14,3);not null;default:0"`
	UShop         decimal.Decimal `gorm:"column:ushop;type:decimal(14,3);not null;default:0"`
	PECom         decimal.Decimal `gorm:"column:pecom;type:decimal(14,3);not null;default:0"`
	OtherDiscount decimal.Decimal `gorm:"column:other_discount;type:decimal(14,3);not null;default:0"`
	Roundoff      decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	TCS           decimal.Decimal `gorm:"column:tcs;type:decimal(14,3);not null;default:0"`
	TDS           decimal.Decimal `gorm:"column:tds;type:decimal(14,3);not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
}

func (SalesRegisterRowModel) TableName() string { return "sales_register_rows" }

// ToDomain converts the staging model to a domain row.
func (m *SalesRegisterRowModel) ToDomain() report.SalesRegisterRow {
	return report.SalesRegisterRow{
		TenantID:      m.TenantID,
		Type:          report.TxnType(m.Type),
		InvoiceNo:     m.InvoiceNo,
		Date:          m.Date,
		PartyID:       m.PartyID,
		TaxID:         m.TaxID,
		Amount:        m.Amount,
		BTPR:          m.BTPR,
		Outpayment:    m.Outpayment,
		UShop:         m.UShop,
		PECom:         m.PECom,
		OtherDiscount: m.OtherDiscount,
		Roundoff:      m.Roundoff,
		TCS:           m.TCS,
		TDS:           m.TDS,
	}
}

// SalesRegisterRowModelFromDomain creates a staging model from a domain row.
func SalesRegisterRowModelFromDomain(r report.SalesRegisterRow) SalesRegisterRowModel {
	return SalesRegisterRowModel{
		TenantID:      r.TenantID,
		Type:          string(r.Type),
		InvoiceNo:     r.InvoiceNo,
		Date:          r.Date,
		PartyID:       r.PartyID,
		TaxID:         r.TaxID,
		Amount:        r.Amount,
		BTPR:          r.BTPR,
		Outpayment:    r.Outpayment,
		UShop:         r.UShop,
		PECom:         r.PECom,
		OtherDiscount: r.OtherDiscount,
		Roundoff:      r.Roundoff,
		TCS:           r.TCS,
		TDS:           r.TDS,
	}
}

// GSTR1RowModel is the staging model for inventory/HSN lines.
type GSTR1RowModel struct {
	ID                uint            `gorm:"primaryKey"`
	TenantID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_gstr1_window,priority:1"`
	Type              string          `gorm:"type:varchar(20);not null"`
	InvoiceNo         string          `gorm:"type:varchar(50);not null"`
	Date              time.Time       `gorm:"type:date;not null;index:idx_gstr1_window,priority:2"`
	CreditNoteNo      string          `gorm:"type:varchar(50);not null;default:''"`
	OriginalInvoiceNo string          `gorm:"type:varchar(50);not null;default:''"`
	TaxID             *string         `gorm:"column:tax_id;type:varchar(20)"`
	StockID           string          `gorm:"type:varchar(50);not null"`
	Quantity          decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	Rate              decimal.Decimal `gorm:"type:decimal(5,1);not null;default:0"`
	TaxableValue      decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	InventoryAmount   decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	CreatedAt         time.Time       `gorm:"not null"`
}

func (GSTR1RowModel) TableName() string { return "gstr1_rows" }

// ToDomain converts the staging model to a domain row.
func (m *GSTR1RowModel) ToDomain() report.GSTR1Row {
	return report.GSTR1Row{
		TenantID:          m.TenantID,
		Type:              report.TxnType(m.Type),
		InvoiceNo:         m.InvoiceNo,
		Date:              m.Date,
		CreditNoteNo:      m.CreditNoteNo,
		OriginalInvoiceNo: m.OriginalInvoiceNo,
		TaxID:             m.TaxID,
		StockID:           m.StockID,
		Quantity:          m.Quantity,
		Rate:              m.Rate,
		TaxableValue:      m.TaxableValue,
		InventoryAmount:   m.InventoryAmount,
	}
}

// GSTR1RowModelFromDomain creates a staging model from a domain row.
func GSTR1RowModelFromDomain(r report.GSTR1Row) GSTR1RowModel {
	return GSTR1RowModel{
		TenantID:          r.TenantID,
		Type:              string(r.Type),
		InvoiceNo:         r.InvoiceNo,
		Date:              r.Date,
		CreditNoteNo:      r.CreditNoteNo,
		OriginalInvoiceNo: r.OriginalInvoiceNo,
		TaxID:             r.TaxID,
		StockID:           r.StockID,
		Quantity:          r.Quantity,
		Rate:              r.Rate,
		TaxableValue:      r.TaxableValue,
		InventoryAmount:   r.InventoryAmount,
	}
}

// DamageShortageRowModel is the staging model for damage/shortage lines.
type DamageShortageRowModel struct {
	ID         uint            `gorm:"primaryKey"`
	TenantID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_dmg_sht_window,priority:1"`
	Type       string          `gorm:"type:varchar(20);not null"`
	InvoiceNo  string          `gorm:"type:varchar(50);not null"`
	Date       time.Time       `gorm:"type:date;not null;index:idx_dmg_sht_window,priority:2"`
	PartyID    string          `gorm:"type:varchar(50);not null"`
	StockID    string          `gorm:"type:varchar(50);not null"`
	Quantity   decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	ReturnFrom string          `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

func (DamageShortageRowModel) TableName() string { return "damage_shortage_rows" }

// ToDomain converts the staging model to a domain row.
func (m *DamageShortageRowModel) ToDomain() report.DamageShortageRow {
	return report.DamageShortageRow{
		TenantID:   m.TenantID,
		Type:       report.TxnType(m.Type),
		InvoiceNo:  m.InvoiceNo,
		Date:       m.Date,
		PartyID:    m.PartyID,
		StockID:    m.StockID,
		Quantity:   m.Quantity,
		Amount:     m.Amount,
		ReturnFrom: m.ReturnFrom,
	}
}

// DamageShortageRowModelFromDomain creates a staging model from a domain row.
func DamageShortageRowModelFromDomain(r report.DamageShortageRow) DamageShortageRowModel {
	return DamageShortageRowModel{
		TenantID:   r.TenantID,
		Type:       string(r.Type),
		InvoiceNo:  r.InvoiceNo,
		Date:       r.Date,
		PartyID:    r.PartyID,
		StockID:    r.StockID,
		Quantity:   r.Quantity,
		Amount:     r.Amount,
		ReturnFrom: r.ReturnFrom,
	}
}

// StockRateRowModel is the staging model for stock HSN/rate lines.
type StockRateRowModel struct {
	ID        uint            `gorm:"primaryKey"`
	TenantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockID   string          `gorm:"type:varchar(50);not null"`
	HSN       string          `gorm:"column:hsn;type:varchar(10);not null;default:''"`
	Rate      decimal.Decimal `gorm:"type:decimal(5,1);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
}

func (StockRateRowModel) TableName() string { return "stock_rate_rows" }

// ToDomain converts the staging model to a domain row.
func (m *StockRateRowModel) ToDomain() report.StockRateRow {
	return report.StockRateRow{TenantID: m.TenantID, StockID: m.StockID, HSN: m.HSN, Rate: m.Rate}
}

// StockRateRowModelFromDomain creates a staging model from a domain row.
func StockRateRowModelFromDomain(r report.StockRateRow) StockRateRowModel {
	return StockRateRowModel{TenantID: r.TenantID, StockID: r.StockID, HSN: r.HSN, Rate: r.Rate}
}

// PartyRowModel is the staging model for party master lines.
type PartyRowModel struct {
	ID         uint      `gorm:"primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Code       string    `gorm:"type:varchar(50);not null"`
	Name       string    `gorm:"type:varchar(200);not null;default:''"`
	Address    string    `gorm:"type:varchar(500);not null;default:''"`
	MasterCode string    `gorm:"type:varchar(50);not null;default:''"`
	Phone      string    `gorm:"type:varchar(20);not null;default:''"`
	TaxID      *string   `gorm:"column:tax_id;type:varchar(20)"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (PartyRowModel) TableName() string { return "party_rows" }

// ToDomain converts the staging model to a domain row.
func (m *PartyRowModel) ToDomain() report.PartyRow {
	return report.PartyRow{
		TenantID:   m.TenantID,
		Code:       m.Code,
		Name:       m.Name,
		Address:    m.Address,
		MasterCode: m.MasterCode,
		Phone:      m.Phone,
		TaxID:      m.TaxID,
	}
}

// PartyRowModelFromDomain creates a staging model from a domain row.
func PartyRowModelFromDomain(r report.PartyRow) PartyRowModel {
	return PartyRowModel{
		TenantID:   r.TenantID,
		Code:       r.Code,
		Name:       r.Name,
		Address:    r.Address,
		MasterCode: r.MasterCode,
		Phone:      r.Phone,
		TaxID:      r.TaxID,
	}
}
