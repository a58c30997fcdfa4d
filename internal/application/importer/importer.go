// Package importer orchestrates the refresh and transform cycle: source
// reports are refreshed into staging under a concurrency bound, then each
// importer transforms its staging rows into ledger rows inside one
// transaction.
package importer

import (
	"context"

	"github.com/google/uuid"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/domain/reconcile"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// Repositories is the repository set available inside an import transaction.
type Repositories interface {
	Reports() report.Repository
	Ledger() ledger.Repository
	Masters() ledger.MasterRepository
}

// TransactionScope runs a function against transaction-bound repositories.
// The function's error rolls the whole transaction back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

// Outcome is what one importer run produced.
type Outcome struct {
	EntriesInserted   int
	DiscountsInserted int
	InventoryInserted int
	RowsUpserted      int64
	Deleted           int64
	Diagnostics       []reconcile.Diagnostic
}

// Importer transforms refreshed staging rows into ledger rows. Run executes
// the importer's whole delete-then-insert contract in one transaction.
type Importer interface {
	Name() string

	// Descriptors lists the source reports the importer consumes; the
	// pipeline refreshes their union before any transform starts.
	Descriptors() []report.Descriptor

	// ArgKind is the argument shape Run accepts.
	ArgKind() report.ArgKind

	Run(ctx context.Context, scope TransactionScope, tenantID uuid.UUID, args report.Args) (Outcome, error)
}
