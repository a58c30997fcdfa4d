package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/Venkatesh2304/myerpv2/internal/application/importer"
	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// GormImportScope implements importer.TransactionScope using GORM
// transactions. Every repository handed to the callback is bound to the
// same transaction, so the snapshot reads, the range delete and the inserts
// of one import commit or roll back as a unit.
type GormImportScope struct {
	db *gorm.DB
}

// NewGormImportScope creates a new GormImportScope.
func NewGormImportScope(db *gorm.DB) *GormImportScope {
	return &GormImportScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormImportScope) Execute(ctx context.Context, fn func(repos importer.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormImportRepositories{tx: tx})
	})
}

// gormImportRepositories provides the repositories scoped to one transaction.
type gormImportRepositories struct {
	tx *gorm.DB
}

func (r *gormImportRepositories) Reports() report.Repository {
	return NewGormReportRepository(r.tx)
}

func (r *gormImportRepositories) Ledger() ledger.Repository {
	return NewGormLedgerRepository(r.tx)
}

func (r *gormImportRepositories) Masters() ledger.MasterRepository {
	return NewGormMasterRepository(r.tx)
}

// Ensure the transaction scope contracts are satisfied
var (
	_ importer.TransactionScope = (*GormImportScope)(nil)
	_ importer.Repositories     = (*gormImportRepositories)(nil)
)
