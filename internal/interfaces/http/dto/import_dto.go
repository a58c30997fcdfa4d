package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Venkatesh2304/myerpv2/internal/application/importer"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

const dateLayout = "2006-01-02"

// RunImportRequest triggers a full refresh and import cycle for a tenant
// over an inclusive date window.
type RunImportRequest struct {
	TenantID string `json:"tenant_id" binding:"required,uuid"`
	From     string `json:"from" binding:"required"`
	To       string `json:"to" binding:"required"`
}

// Window parses the request into a tenant id and date range. The window is
// inclusive on both ends and From must not be after To.
func (r RunImportRequest) Window() (uuid.UUID, report.DateRangeArgs, error) {
	tenantID, err := uuid.Parse(r.TenantID)
	if err != nil {
		return uuid.Nil, report.DateRangeArgs{}, fmt.Errorf("invalid tenant_id: %w", err)
	}

	from, err := time.Parse(dateLayout, r.From)
	if err != nil {
		return uuid.Nil, report.DateRangeArgs{}, fmt.Errorf("invalid from date %q: expected YYYY-MM-DD", r.From)
	}
	to, err := time.Parse(dateLayout, r.To)
	if err != nil {
		return uuid.Nil, report.DateRangeArgs{}, fmt.Errorf("invalid to date %q: expected YYYY-MM-DD", r.To)
	}
	if from.After(to) {
		return uuid.Nil, report.DateRangeArgs{}, fmt.Errorf("from date %s is after to date %s", r.From, r.To)
	}

	return tenantID, report.DateRangeArgs{From: from, To: to}, nil
}

// RefreshResultResponse is one source report refresh in a run.
type RefreshResultResponse struct {
	Kind      string `json:"kind"`
	Rows      int64  `json:"rows"`
	Error     string `json:"error,omitempty"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// DiagnosticResponse is one non-fatal reconciliation finding.
type DiagnosticResponse struct {
	Code      string `json:"code"`
	InvoiceNo string `json:"invoice_no,omitempty"`
	StockID   string `json:"stock_id,omitempty"`
	Date      string `json:"date,omitempty"`
	Message   string `json:"message"`
}

// ImportResultResponse is one importer transform in a run.
type ImportResultResponse struct {
	Name              string               `json:"name"`
	EntriesInserted   int                  `json:"entries_inserted"`
	DiscountsInserted int                  `json:"discounts_inserted"`
	InventoryInserted int                  `json:"inventory_inserted"`
	RowsUpserted      int64                `json:"rows_upserted"`
	Deleted           int64                `json:"deleted"`
	Diagnostics       []DiagnosticResponse `json:"diagnostics,omitempty"`
	Error             string               `json:"error,omitempty"`
	ElapsedMs         int64                `json:"elapsed_ms"`
}

// RunImportResponse is the outcome of a full pipeline run.
type RunImportResponse struct {
	Failed    bool                    `json:"failed"`
	Refreshes []RefreshResultResponse `json:"refreshes"`
	Imports   []ImportResultResponse  `json:"imports"`
	ElapsedMs int64                   `json:"elapsed_ms"`
}

// NewRunImportResponse maps a pipeline run report to its API shape.
func NewRunImportResponse(run importer.RunReport) RunImportResponse {
	resp := RunImportResponse{
		Failed:    run.Failed(),
		Refreshes: make([]RefreshResultResponse, 0, len(run.Refreshes)),
		Imports:   make([]ImportResultResponse, 0, len(run.Imports)),
		ElapsedMs: run.Elapsed.Milliseconds(),
	}

	for _, ref := range run.Refreshes {
		resp.Refreshes = append(resp.Refreshes, RefreshResultResponse{
			Kind:      string(ref.Kind),
			Rows:      ref.Rows,
			Error:     ref.Error,
			ElapsedMs: ref.Elapsed.Milliseconds(),
		})
	}

	for _, imp := range run.Imports {
		out := ImportResultResponse{
			Name:              imp.Name,
			EntriesInserted:   imp.Outcome.EntriesInserted,
			DiscountsInserted: imp.Outcome.DiscountsInserted,
			InventoryInserted: imp.Outcome.InventoryInserted,
			RowsUpserted:      imp.Outcome.RowsUpserted,
			Deleted:           imp.Outcome.Deleted,
			Error:             imp.Error,
			ElapsedMs:         imp.Elapsed.Milliseconds(),
		}
		for _, d := range imp.Diagnostics {
			dr := DiagnosticResponse{
				Code:      d.Code,
				InvoiceNo: d.InvoiceNo,
				StockID:   d.StockID,
				Message:   d.Message,
			}
			if !d.Date.IsZero() {
				dr.Date = d.Date.Format(dateLayout)
			}
			out.Diagnostics = append(out.Diagnostics, dr)
		}
		resp.Imports = append(resp.Imports, out)
	}

	return resp
}
