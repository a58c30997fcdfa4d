package importer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Venkatesh2304/myerpv2/internal/domain/reconcile"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// ImportResult is the outcome of one importer's transform.
type ImportResult struct {
	Name        string                 `json:"name"`
	Outcome     Outcome                `json:"outcome"`
	Err         error                  `json:"-"`
	Error       string                 `json:"error,omitempty"`
	Diagnostics []reconcile.Diagnostic `json:"diagnostics,omitempty"`
	Elapsed     time.Duration          `json:"elapsed"`
}

// RunReport is the outcome of one full pipeline run.
type RunReport struct {
	Refreshes []RefreshResult `json:"refreshes"`
	Imports   []ImportResult  `json:"imports"`
	Elapsed   time.Duration   `json:"elapsed"`
}

// Failed reports whether any refresh or import ended in an error.
func (r RunReport) Failed() bool {
	for _, ref := range r.Refreshes {
		if ref.Err != nil {
			return true
		}
	}
	for _, imp := range r.Imports {
		if imp.Err != nil {
			return true
		}
	}
	return false
}

// Pipeline runs the full cycle for a tenant: refresh the union of the
// importers' source reports concurrently, then run the importer transforms
// one after another, each in its own transaction. A failing refresh or
// transform is recorded and the run keeps going; partial progress is fine
// because every transform is individually atomic and idempotent.
type Pipeline struct {
	orchestrator *RefreshOrchestrator
	scope        TransactionScope
	importers    []Importer
	logger       *zap.Logger
}

// NewPipeline creates a new Pipeline. Importers run in the given order.
func NewPipeline(orchestrator *RefreshOrchestrator, scope TransactionScope, importers []Importer, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		orchestrator: orchestrator,
		scope:        scope,
		importers:    importers,
		logger:       logger,
	}
}

// RunAll refreshes and imports everything for the tenant. The window feeds
// every date-ranged report and importer; parameterless ones ignore it.
func (p *Pipeline) RunAll(ctx context.Context, tenantID uuid.UUID, window report.DateRangeArgs) RunReport {
	start := time.Now()

	var descriptors []report.Descriptor
	argsByKind := make(map[report.Kind]report.Args)
	for _, imp := range p.importers {
		for _, d := range imp.Descriptors() {
			descriptors = append(descriptors, d)
			argsByKind[d.Kind] = argsFor(d.ArgKind, window)
		}
	}

	rep := RunReport{
		Refreshes: p.orchestrator.RefreshAll(ctx, tenantID, descriptors, argsByKind),
	}

	for _, imp := range p.importers {
		rep.Imports = append(rep.Imports, p.runImporter(ctx, tenantID, imp, window))
	}

	rep.Elapsed = time.Since(start)
	p.logger.Info("pipeline run finished",
		zap.String("tenant_id", tenantID.String()),
		zap.Bool("failed", rep.Failed()),
		zap.Duration("elapsed", rep.Elapsed))
	return rep
}

func (p *Pipeline) runImporter(ctx context.Context, tenantID uuid.UUID, imp Importer, window report.DateRangeArgs) ImportResult {
	res := ImportResult{Name: imp.Name()}
	start := time.Now()

	outcome, err := imp.Run(ctx, p.scope, tenantID, argsFor(imp.ArgKind(), window))
	res.Outcome = outcome
	res.Diagnostics = outcome.Diagnostics
	res.Elapsed = time.Since(start)

	if err != nil {
		res.Err = err
		res.Error = err.Error()
		p.logger.Error("import failed",
			zap.String("tenant_id", tenantID.String()),
			zap.String("importer", imp.Name()),
			zap.Error(err))
		return res
	}

	for _, d := range outcome.Diagnostics {
		p.logger.Warn("import diagnostic",
			zap.String("tenant_id", tenantID.String()),
			zap.String("importer", imp.Name()),
			zap.String("code", d.Code),
			zap.String("message", d.Message))
	}
	p.logger.Info("import finished",
		zap.String("tenant_id", tenantID.String()),
		zap.String("importer", imp.Name()),
		zap.Int("entries", outcome.EntriesInserted),
		zap.Int64("deleted", outcome.Deleted),
		zap.Duration("elapsed", res.Elapsed))
	return res
}

func argsFor(kind report.ArgKind, window report.DateRangeArgs) report.Args {
	if kind == report.ArgDateRange {
		return window
	}
	return report.EmptyArgs{}
}
