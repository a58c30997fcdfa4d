package importer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// fakeState is the in-memory store backing the fake repositories.
type fakeState struct {
	registerRows []report.SalesRegisterRow
	gstr1Rows    []report.GSTR1Row
	dmgRows      []report.DamageShortageRow
	stockRates   []report.StockRateRow
	partyRows    []report.PartyRow

	entries   []ledger.Entry
	discounts []ledger.DiscountLineItem
	inventory []ledger.InventoryLineItem
	stocks    map[string]ledger.StockMaster
	parties   map[string]ledger.PartyMaster
}

func newFakeState() *fakeState {
	return &fakeState{
		stocks:  map[string]ledger.StockMaster{},
		parties: map[string]ledger.PartyMaster{},
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	c.registerRows = append(c.registerRows, s.registerRows...)
	c.gstr1Rows = append(c.gstr1Rows, s.gstr1Rows...)
	c.dmgRows = append(c.dmgRows, s.dmgRows...)
	c.stockRates = append(c.stockRates, s.stockRates...)
	c.partyRows = append(c.partyRows, s.partyRows...)
	c.entries = append(c.entries, s.entries...)
	c.discounts = append(c.discounts, s.discounts...)
	c.inventory = append(c.inventory, s.inventory...)
	for k, v := range s.stocks {
		c.stocks[k] = v
	}
	for k, v := range s.parties {
		c.parties[k] = v
	}
	return c
}

// fakeScope mimics transactional semantics: the callback works on a copy
// and the copy replaces the state only when the callback succeeds.
type fakeScope struct {
	state        *fakeState
	insertErr    error
	executeCalls int
}

func (s *fakeScope) Execute(ctx context.Context, fn func(repos Repositories) error) error {
	s.executeCalls++
	work := s.state.clone()
	if err := fn(&fakeRepos{state: work, insertErr: s.insertErr}); err != nil {
		return err
	}
	*s.state = *work
	return nil
}

type fakeRepos struct {
	state     *fakeState
	insertErr error
}

func (r *fakeRepos) Reports() report.Repository       { return &fakeReportRepo{state: r.state} }
func (r *fakeRepos) Ledger() ledger.Repository        { return &fakeLedgerRepo{r} }
func (r *fakeRepos) Masters() ledger.MasterRepository { return &fakeMasterRepo{state: r.state} }

type fakeReportRepo struct {
	state *fakeState
}

func inWindow(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

func (f *fakeReportRepo) SalesRegisterWindow(_ context.Context, tenantID uuid.UUID, from, to time.Time) ([]report.SalesRegisterRow, error) {
	var out []report.SalesRegisterRow
	for _, r := range f.state.registerRows {
		if r.TenantID == tenantID && inWindow(r.Date, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) GSTR1Window(_ context.Context, tenantID uuid.UUID, from, to time.Time) ([]report.GSTR1Row, error) {
	var out []report.GSTR1Row
	for _, r := range f.state.gstr1Rows {
		if r.TenantID == tenantID && inWindow(r.Date, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) DamageShortageWindow(_ context.Context, tenantID uuid.UUID, from, to time.Time) ([]report.DamageShortageRow, error) {
	var out []report.DamageShortageRow
	for _, r := range f.state.dmgRows {
		if r.TenantID == tenantID && inWindow(r.Date, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) StockRates(_ context.Context, tenantID uuid.UUID) ([]report.StockRateRow, error) {
	var out []report.StockRateRow
	for _, r := range f.state.stockRates {
		if r.TenantID == tenantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) Parties(_ context.Context, tenantID uuid.UUID) ([]report.PartyRow, error) {
	var out []report.PartyRow
	for _, r := range f.state.partyRows {
		if r.TenantID == tenantID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeLedgerRepo struct {
	repos *fakeRepos
}

func (f *fakeLedgerRepo) DeleteEntriesInRange(_ context.Context, tenantID uuid.UUID, from, to time.Time, types []ledger.EntryType) (int64, error) {
	typeSet := map[ledger.EntryType]struct{}{}
	for _, t := range types {
		typeSet[t] = struct{}{}
	}
	victims := map[string]struct{}{}
	var kept []ledger.Entry
	var deleted int64
	for _, e := range f.repos.state.entries {
		_, match := typeSet[e.Type]
		if e.TenantID == tenantID && match && inWindow(e.Date, from, to) {
			victims[e.InvoiceNo] = struct{}{}
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	f.repos.state.entries = kept

	var keptDiscounts []ledger.DiscountLineItem
	for _, d := range f.repos.state.discounts {
		if _, hit := victims[d.InvoiceNo]; hit && d.TenantID == tenantID {
			continue
		}
		keptDiscounts = append(keptDiscounts, d)
	}
	f.repos.state.discounts = keptDiscounts

	var keptInventory []ledger.InventoryLineItem
	for _, i := range f.repos.state.inventory {
		if _, hit := victims[i.InvoiceNo]; hit && i.TenantID == tenantID {
			continue
		}
		keptInventory = append(keptInventory, i)
	}
	f.repos.state.inventory = keptInventory

	return deleted, nil
}

func (f *fakeLedgerRepo) InsertEntries(_ context.Context, entries []ledger.Entry) error {
	if f.repos.insertErr != nil {
		return f.repos.insertErr
	}
	f.repos.state.entries = append(f.repos.state.entries, entries...)
	return nil
}

func (f *fakeLedgerRepo) InsertDiscounts(_ context.Context, items []ledger.DiscountLineItem) error {
	if f.repos.insertErr != nil {
		return f.repos.insertErr
	}
	f.repos.state.discounts = append(f.repos.state.discounts, items...)
	return nil
}

func (f *fakeLedgerRepo) InsertInventory(_ context.Context, items []ledger.InventoryLineItem) error {
	if f.repos.insertErr != nil {
		return f.repos.insertErr
	}
	f.repos.state.inventory = append(f.repos.state.inventory, items...)
	return nil
}

func (f *fakeLedgerRepo) LatestPartyTaxID(_ context.Context, tenantID uuid.UUID, partyID string) (*string, error) {
	var latest *ledger.Entry
	for idx := range f.repos.state.entries {
		e := &f.repos.state.entries[idx]
		if e.TenantID != tenantID || e.PartyID != partyID {
			continue
		}
		if latest == nil || e.Date.After(latest.Date) {
			latest = e
		}
	}
	if latest == nil {
		return nil, ledger.ErrNotFound
	}
	return latest.TaxID, nil
}

type fakeMasterRepo struct {
	state *fakeState
}

func (f *fakeMasterRepo) UpsertStocks(_ context.Context, rows []ledger.StockMaster) (int64, error) {
	for _, r := range rows {
		f.state.stocks[r.StockID] = r
	}
	return int64(len(rows)), nil
}

func (f *fakeMasterRepo) UpsertParties(_ context.Context, rows []ledger.PartyMaster) (int64, error) {
	for _, r := range rows {
		f.state.parties[r.Code] = r
	}
	return int64(len(rows)), nil
}

func (f *fakeMasterRepo) StockRate(_ context.Context, _ uuid.UUID, stockID string) (decimal.Decimal, error) {
	s, ok := f.state.stocks[stockID]
	if !ok {
		return decimal.Zero, ledger.ErrNotFound
	}
	return s.Rate, nil
}
