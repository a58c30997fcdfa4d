package provider

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

const dateLayout = "2006-01-02"

// CSVDirFetcher reads report files from `<root>/<tenant>/<kind>.csv` and
// loads them into the staging store with replace semantics. Date-ranged
// reports only load the rows inside the requested window, so a stale file
// never leaks rows outside it.
type CSVDirFetcher struct {
	root   string
	store  report.Store
	logger *zap.Logger
}

// NewCSVDirFetcher creates a new CSVDirFetcher rooted at the given directory.
func NewCSVDirFetcher(root string, store report.Store, logger *zap.Logger) *CSVDirFetcher {
	return &CSVDirFetcher{root: root, store: store, logger: logger.Named("provider")}
}

// Fetch implements report.Fetcher.
func (f *CSVDirFetcher) Fetch(ctx context.Context, tenantID uuid.UUID, kind report.Kind, args report.Args) (int64, error) {
	path := filepath.Join(f.root, tenantID.String(), string(kind)+".csv")
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, unavailable(kind, err)
		}
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	rows, err := newCSVRows(file)
	if err != nil {
		return 0, unavailable(kind, err)
	}

	inserted, err := f.load(ctx, tenantID, kind, args, rows)
	if err != nil {
		return 0, err
	}

	f.logger.Debug("report file loaded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("kind", string(kind)),
		zap.Int64("rows", inserted))
	return inserted, nil
}

func (f *CSVDirFetcher) load(ctx context.Context, tenantID uuid.UUID, kind report.Kind, args report.Args, rows *csvRows) (int64, error) {
	switch kind {
	case report.KindSalesRegister:
		window, ok := args.(report.DateRangeArgs)
		if !ok {
			return 0, fmt.Errorf("%s: date range args required", kind)
		}
		parsed, err := parseSalesRegister(tenantID, rows, window)
		if err != nil {
			return 0, err
		}
		return f.store.ReplaceSalesRegisterWindow(ctx, tenantID, window.From, window.To, parsed)

	case report.KindGSTR1:
		window, ok := args.(report.DateRangeArgs)
		if !ok {
			return 0, fmt.Errorf("%s: date range args required", kind)
		}
		parsed, err := parseGSTR1(tenantID, rows, window)
		if err != nil {
			return 0, err
		}
		return f.store.ReplaceGSTR1Window(ctx, tenantID, window.From, window.To, parsed)

	case report.KindDamageShortage:
		window, ok := args.(report.DateRangeArgs)
		if !ok {
			return 0, fmt.Errorf("%s: date range args required", kind)
		}
		parsed, err := parseDamageShortage(tenantID, rows, window)
		if err != nil {
			return 0, err
		}
		return f.store.ReplaceDamageShortageWindow(ctx, tenantID, window.From, window.To, parsed)

	case report.KindStockRate:
		parsed, err := parseStockRates(tenantID, rows)
		if err != nil {
			return 0, err
		}
		return f.store.ReplaceStockRates(ctx, tenantID, parsed)

	case report.KindParty:
		parsed, err := parseParties(tenantID, rows)
		if err != nil {
			return 0, err
		}
		return f.store.ReplaceParties(ctx, tenantID, parsed)

	default:
		return 0, fmt.Errorf("unknown report kind %q", kind)
	}
}

func parseSalesRegister(tenantID uuid.UUID, rows *csvRows, window report.DateRangeArgs) ([]report.SalesRegisterRow, error) {
	var out []report.SalesRegisterRow
	for rows.Next() {
		date, err := rows.Date("date")
		if err != nil {
			return nil, rows.wrap(err)
		}
		if !inWindow(date, window) {
			continue
		}
		row := report.SalesRegisterRow{
			TenantID:  tenantID,
			Type:      report.TxnType(rows.String("type")),
			InvoiceNo: rows.String("invoice_no"),
			Date:      date,
			PartyID:   rows.String("party_id"),
			TaxID:     rows.OptString("tax_id"),
		}
		for _, field := range []struct {
			name string
			dst  *decimal.Decimal
		}{
			{"amount", &row.Amount},
			{"btpr", &row.BTPR},
			{"outpyt", &row.Outpayment},
			{"ushop", &row.UShop},
			{"pecom", &row.PECom},
			{"other_discount", &row.OtherDiscount},
			{"roundoff", &row.Roundoff},
			{"tcs", &row.TCS},
			{"tds", &row.TDS},
		} {
			if *field.dst, err = rows.Decimal(field.name); err != nil {
				return nil, rows.wrap(err)
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func parseGSTR1(tenantID uuid.UUID, rows *csvRows, window report.DateRangeArgs) ([]report.GSTR1Row, error) {
	var out []report.GSTR1Row
	for rows.Next() {
		date, err := rows.Date("date")
		if err != nil {
			return nil, rows.wrap(err)
		}
		if !inWindow(date, window) {
			continue
		}
		row := report.GSTR1Row{
			TenantID:          tenantID,
			Type:              report.TxnType(rows.String("type")),
			InvoiceNo:         rows.String("invoice_no"),
			Date:              date,
			CreditNoteNo:      rows.String("credit_note_no"),
			OriginalInvoiceNo: rows.String("original_invoice_no"),
			TaxID:             rows.OptString("tax_id"),
			StockID:           rows.String("stock_id"),
		}
		for _, field := range []struct {
			name string
			dst  *decimal.Decimal
		}{
			{"quantity", &row.Quantity},
			{"rate", &row.Rate},
			{"taxable_value", &row.TaxableValue},
			{"inventory_amount", &row.InventoryAmount},
		} {
			if *field.dst, err = rows.Decimal(field.name); err != nil {
				return nil, rows.wrap(err)
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func parseDamageShortage(tenantID uuid.UUID, rows *csvRows, window report.DateRangeArgs) ([]report.DamageShortageRow, error) {
	var out []report.DamageShortageRow
	for rows.Next() {
		date, err := rows.Date("date")
		if err != nil {
			return nil, rows.wrap(err)
		}
		if !inWindow(date, window) {
			continue
		}
		row := report.DamageShortageRow{
			TenantID:   tenantID,
			Type:       report.TxnType(rows.String("type")),
			InvoiceNo:  rows.String("invoice_no"),
			Date:       date,
			PartyID:    rows.String("party_id"),
			StockID:    rows.String("stock_id"),
			ReturnFrom: rows.String("return_from"),
		}
		if row.Quantity, err = rows.Decimal("quantity"); err != nil {
			return nil, rows.wrap(err)
		}
		if row.Amount, err = rows.Decimal("amount"); err != nil {
			return nil, rows.wrap(err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func parseStockRates(tenantID uuid.UUID, rows *csvRows) ([]report.StockRateRow, error) {
	var out []report.StockRateRow
	for rows.Next() {
		row := report.StockRateRow{
			TenantID: tenantID,
			StockID:  rows.String("stock_id"),
			HSN:      rows.String("hsn"),
		}
		var err error
		if row.Rate, err = rows.Decimal("rate"); err != nil {
			return nil, rows.wrap(err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func parseParties(tenantID uuid.UUID, rows *csvRows) ([]report.PartyRow, error) {
	var out []report.PartyRow
	for rows.Next() {
		out = append(out, report.PartyRow{
			TenantID:   tenantID,
			Code:       rows.String("code"),
			Name:       rows.String("name"),
			Address:    rows.String("address"),
			MasterCode: rows.String("master_code"),
			Phone:      rows.String("phone"),
			TaxID:      rows.OptString("tax_id"),
		})
	}
	return out, rows.Err()
}

func inWindow(d time.Time, window report.DateRangeArgs) bool {
	return !d.Before(window.From) && !d.After(window.To)
}

// csvRows iterates a headered CSV file and resolves fields by column name.
type csvRows struct {
	reader  *csv.Reader
	headers map[string]int
	record  []string
	line    int
	err     error
}

func newCSVRows(r io.Reader) (*csvRows, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	headers := make(map[string]int, len(header))
	for i, h := range header {
		headers[strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))] = i
	}
	return &csvRows{reader: reader, headers: headers, line: 1}, nil
}

func (r *csvRows) Next() bool {
	if r.err != nil {
		return false
	}
	record, err := r.reader.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = err
		return false
	}
	r.record = record
	r.line++
	return true
}

func (r *csvRows) Err() error {
	if r.err != nil {
		return fmt.Errorf("line %d: %w", r.line, r.err)
	}
	return nil
}

func (r *csvRows) wrap(err error) error {
	return fmt.Errorf("line %d: %w", r.line, err)
}

func (r *csvRows) String(name string) string {
	idx, ok := r.headers[name]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

func (r *csvRows) OptString(name string) *string {
	s := r.String(name)
	if s == "" {
		return nil
	}
	return &s
}

func (r *csvRows) Date(name string) (time.Time, error) {
	s := r.String(name)
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("field %s: %w", name, err)
	}
	return d, nil
}

func (r *csvRows) Decimal(name string) (decimal.Decimal, error) {
	s := r.String(name)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("field %s: %w", name, err)
	}
	return d, nil
}

var _ report.Fetcher = (*CSVDirFetcher)(nil)
