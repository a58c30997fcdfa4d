package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// captureStore records what the fetcher loaded.
type captureStore struct {
	salesRows []report.SalesRegisterRow
	gstrRows  []report.GSTR1Row
	dmgRows   []report.DamageShortageRow
	stockRows []report.StockRateRow
	partyRows []report.PartyRow
	from, to  time.Time
}

func (s *captureStore) ReplaceSalesRegisterWindow(_ context.Context, _ uuid.UUID, from, to time.Time, rows []report.SalesRegisterRow) (int64, error) {
	s.from, s.to, s.salesRows = from, to, rows
	return int64(len(rows)), nil
}

func (s *captureStore) ReplaceGSTR1Window(_ context.Context, _ uuid.UUID, from, to time.Time, rows []report.GSTR1Row) (int64, error) {
	s.from, s.to, s.gstrRows = from, to, rows
	return int64(len(rows)), nil
}

func (s *captureStore) ReplaceDamageShortageWindow(_ context.Context, _ uuid.UUID, from, to time.Time, rows []report.DamageShortageRow) (int64, error) {
	s.from, s.to, s.dmgRows = from, to, rows
	return int64(len(rows)), nil
}

func (s *captureStore) ReplaceStockRates(_ context.Context, _ uuid.UUID, rows []report.StockRateRow) (int64, error) {
	s.stockRows = rows
	return int64(len(rows)), nil
}

func (s *captureStore) ReplaceParties(_ context.Context, _ uuid.UUID, rows []report.PartyRow) (int64, error) {
	s.partyRows = rows
	return int64(len(rows)), nil
}

func writeReport(t *testing.T, root string, tenantID uuid.UUID, kind report.Kind, content string) {
	t.Helper()
	dir := filepath.Join(root, tenantID.String())
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, string(kind)+".csv"), []byte(content), 0o644))
}

func window() report.DateRangeArgs {
	return report.DateRangeArgs{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCSVDirFetcher_SalesRegister(t *testing.T) {
	root := t.TempDir()
	tenantID := uuid.New()
	writeReport(t, root, tenantID, report.KindSalesRegister,
		"type,invoice_no,date,party_id,tax_id,amount,btpr,outpyt,ushop,pecom,other_discount,roundoff,tcs,tds\n"+
			"sales,INV1,2024-01-05,P1,33AAA,100.5,1,0,0,0,2,0.5,0,0\n"+
			"sales,INV2,2024-02-05,P1,,50,0,0,0,0,0,0,0,0\n")

	store := &captureStore{}
	f := NewCSVDirFetcher(root, store, zap.NewNop())

	rows, err := f.Fetch(context.Background(), tenantID, report.KindSalesRegister, window())

	require.NoError(t, err)
	// the February row is outside the window and must not load
	assert.Equal(t, int64(1), rows)
	require.Len(t, store.salesRows, 1)
	got := store.salesRows[0]
	assert.Equal(t, "INV1", got.InvoiceNo)
	assert.Equal(t, tenantID, got.TenantID)
	require.NotNil(t, got.TaxID)
	assert.Equal(t, "33AAA", *got.TaxID)
	assert.Equal(t, "100.5", got.Amount.String())
	assert.Equal(t, window().From, store.from)
}

func TestCSVDirFetcher_GSTR1(t *testing.T) {
	root := t.TempDir()
	tenantID := uuid.New()
	writeReport(t, root, tenantID, report.KindGSTR1,
		"type,invoice_no,date,credit_note_no,original_invoice_no,tax_id,stock_id,quantity,rate,taxable_value,inventory_amount\n"+
			"salesreturn,INV1,2024-01-05,CN1,INV0,,S1,2,9,50,55\n")

	store := &captureStore{}
	f := NewCSVDirFetcher(root, store, zap.NewNop())

	rows, err := f.Fetch(context.Background(), tenantID, report.KindGSTR1, window())

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	require.Len(t, store.gstrRows, 1)
	assert.Equal(t, "CN1", store.gstrRows[0].CreditNoteNo)
	assert.Equal(t, "INV0", store.gstrRows[0].OriginalInvoiceNo)
	assert.Nil(t, store.gstrRows[0].TaxID)
}

func TestCSVDirFetcher_FullSnapshots(t *testing.T) {
	root := t.TempDir()
	tenantID := uuid.New()
	writeReport(t, root, tenantID, report.KindStockRate,
		"stock_id,hsn,rate\nS1,1234,9\nS2,5678,14.5\n")
	writeReport(t, root, tenantID, report.KindParty,
		"code,name,address,master_code,phone,tax_id\nP1,Shop One,12 Main Rd,M1,12345,33BBB\n")

	store := &captureStore{}
	f := NewCSVDirFetcher(root, store, zap.NewNop())

	rows, err := f.Fetch(context.Background(), tenantID, report.KindStockRate, report.EmptyArgs{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)
	assert.Equal(t, "14.5", store.stockRows[1].Rate.String())

	rows, err = f.Fetch(context.Background(), tenantID, report.KindParty, report.EmptyArgs{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.Equal(t, "Shop One", store.partyRows[0].Name)
}

func TestCSVDirFetcher_StripsHeaderBOM(t *testing.T) {
	root := t.TempDir()
	tenantID := uuid.New()
	writeReport(t, root, tenantID, report.KindStockRate,
		"\ufeffstock_id,hsn,rate\nS1,1234,9\n")

	store := &captureStore{}
	f := NewCSVDirFetcher(root, store, zap.NewNop())

	rows, err := f.Fetch(context.Background(), tenantID, report.KindStockRate, report.EmptyArgs{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.Equal(t, "S1", store.stockRows[0].StockID)
}

func TestCSVDirFetcher_MissingFileIsUnavailable(t *testing.T) {
	store := &captureStore{}
	f := NewCSVDirFetcher(t.TempDir(), store, zap.NewNop())

	_, err := f.Fetch(context.Background(), uuid.New(), report.KindSalesRegister, window())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportUnavailable)
}

func TestCSVDirFetcher_BadFieldFails(t *testing.T) {
	root := t.TempDir()
	tenantID := uuid.New()
	writeReport(t, root, tenantID, report.KindStockRate,
		"stock_id,hsn,rate\nS1,1234,not-a-number\n")

	store := &captureStore{}
	f := NewCSVDirFetcher(root, store, zap.NewNop())

	_, err := f.Fetch(context.Background(), tenantID, report.KindStockRate, report.EmptyArgs{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate")
	assert.Empty(t, store.stockRows)
}
