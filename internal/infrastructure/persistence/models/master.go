package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
)

// StockMasterModel is the persistence model for stock master records.
// (tenant_id, stock_id) is the upsert key.
type StockMasterModel struct {
	ID        uint            `gorm:"primaryKey"`
	TenantID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uniq_stock_master,priority:1"`
	StockID   string          `gorm:"type:varchar(50);not null;uniqueIndex:uniq_stock_master,priority:2"`
	HSN       string          `gorm:"column:hsn;type:varchar(20);not null;default:''"`
	Rate      decimal.Decimal `gorm:"type:decimal(5,1);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

func (StockMasterModel) TableName() string { return "stock_masters" }

// ToDomain converts the persistence model to a domain record.
func (m *StockMasterModel) ToDomain() ledger.StockMaster {
	return ledger.StockMaster{
		TenantID: m.TenantID,
		StockID:  m.StockID,
		HSN:      m.HSN,
		Rate:     m.Rate,
	}
}

// StockMasterModelFromDomain creates a persistence model from a domain record.
func StockMasterModelFromDomain(s ledger.StockMaster) StockMasterModel {
	return StockMasterModel{
		TenantID: s.TenantID,
		StockID:  s.StockID,
		HSN:      s.HSN,
		Rate:     s.Rate,
	}
}

// PartyMasterModel is the persistence model for party master records.
// (tenant_id, code) is the upsert key.
type PartyMasterModel struct {
	ID         uint      `gorm:"primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_party_master,priority:1"`
	Code       string    `gorm:"type:varchar(50);not null;uniqueIndex:uniq_party_master,priority:2"`
	Name       string    `gorm:"type:varchar(200);not null;default:''"`
	Address    string    `gorm:"type:varchar(500);not null;default:''"`
	MasterCode string    `gorm:"type:varchar(50);not null;default:''"`
	Phone      string    `gorm:"type:varchar(20);not null;default:''"`
	TaxID      *string   `gorm:"column:tax_id;type:varchar(20)"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (PartyMasterModel) TableName() string { return "party_masters" }

// ToDomain converts the persistence model to a domain record.
func (m *PartyMasterModel) ToDomain() ledger.PartyMaster {
	return ledger.PartyMaster{
		TenantID:   m.TenantID,
		Code:       m.Code,
		Name:       m.Name,
		Address:    m.Address,
		MasterCode: m.MasterCode,
		Phone:      m.Phone,
		TaxID:      m.TaxID,
	}
}

// PartyMasterModelFromDomain creates a persistence model from a domain record.
func PartyMasterModelFromDomain(p ledger.PartyMaster) PartyMasterModel {
	return PartyMasterModel{
		TenantID:   p.TenantID,
		Code:       p.Code,
		Name:       p.Name,
		Address:    p.Address,
		MasterCode: p.MasterCode,
		Phone:      p.Phone,
		TaxID:      p.TaxID,
	}
}
