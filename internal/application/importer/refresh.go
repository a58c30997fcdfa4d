package importer

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/Venkatesh2304/myerpv2/internal/domain/ledger"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
)

// DefaultRefreshConcurrency bounds how many report refreshes run at once.
const DefaultRefreshConcurrency = 10

// RefreshResult is the outcome of refreshing one report.
type RefreshResult struct {
	Kind    report.Kind   `json:"kind"`
	Rows    int64         `json:"rows"`
	Err     error         `json:"-"`
	Error   string        `json:"error,omitempty"`
	Elapsed time.Duration `json:"elapsed"`
}

// RefreshOrchestrator fans report refreshes out to the Fetcher under a
// weighted semaphore. A failed refresh never cancels its siblings; the
// caller decides what a missing report means for each importer.
type RefreshOrchestrator struct {
	fetcher report.Fetcher
	sem     *semaphore.Weighted
	logger  *zap.Logger
}

// NewRefreshOrchestrator creates a new RefreshOrchestrator. A concurrency
// of 0 or less falls back to DefaultRefreshConcurrency.
func NewRefreshOrchestrator(fetcher report.Fetcher, concurrency int64, logger *zap.Logger) *RefreshOrchestrator {
	if concurrency <= 0 {
		concurrency = DefaultRefreshConcurrency
	}
	return &RefreshOrchestrator{
		fetcher: fetcher,
		sem:     semaphore.NewWeighted(concurrency),
		logger:  logger,
	}
}

// RefreshAll refreshes every descriptor once, deduplicated by kind, and
// blocks until all of them finished. Results come back sorted by kind so
// runs are comparable.
func (o *RefreshOrchestrator) RefreshAll(ctx context.Context, tenantID uuid.UUID, descriptors []report.Descriptor, argsByKind map[report.Kind]report.Args) []RefreshResult {
	seen := make(map[report.Kind]report.Descriptor)
	kinds := make([]report.Kind, 0, len(descriptors))
	for _, d := range descriptors {
		if _, dup := seen[d.Kind]; dup {
			continue
		}
		seen[d.Kind] = d
		kinds = append(kinds, d.Kind)
	}

	results := make([]RefreshResult, len(kinds))
	var wg sync.WaitGroup
	for idx, kind := range kinds {
		wg.Add(1)
		go func(idx int, d report.Descriptor) {
			defer wg.Done()
			results[idx] = o.refreshOne(ctx, tenantID, d, argsByKind[d.Kind])
		}(idx, seen[kind])
	}
	wg.Wait()

	sort.Slice(results, func(a, b int) bool { return results[a].Kind < results[b].Kind })
	return results
}

func (o *RefreshOrchestrator) refreshOne(ctx context.Context, tenantID uuid.UUID, d report.Descriptor, args report.Args) (res RefreshResult) {
	res.Kind = d.Kind
	start := time.Now()
	defer func() {
		res.Elapsed = time.Since(start)
		if res.Err != nil {
			res.Error = res.Err.Error()
		}
	}()

	if args == nil {
		if d.ArgKind == report.ArgEmpty {
			args = report.EmptyArgs{}
		} else {
			res.Err = fmt.Errorf("refresh %s: %w: missing %s args", d.Kind, ledger.ErrInvalidInput, d.ArgKind)
			return res
		}
	}
	if args.ArgKind() != d.ArgKind {
		res.Err = fmt.Errorf("refresh %s: %w: want %s args, got %s", d.Kind, ledger.ErrInvalidInput, d.ArgKind, args.ArgKind())
		return res
	}

	if err := o.sem.Acquire(ctx, 1); err != nil {
		res.Err = fmt.Errorf("refresh %s: %w", d.Kind, err)
		return res
	}
	defer o.sem.Release(1)

	rows, err := o.fetcher.Fetch(ctx, tenantID, d.Kind, args)
	if err != nil {
		o.logger.Warn("report refresh failed",
			zap.String("tenant_id", tenantID.String()),
			zap.String("kind", string(d.Kind)),
			zap.Error(err))
		res.Err = fmt.Errorf("refresh %s: %w", d.Kind, err)
		return res
	}

	res.Rows = rows
	o.logger.Debug("report refreshed",
		zap.String("tenant_id", tenantID.String()),
		zap.String("kind", string(d.Kind)),
		zap.Int64("rows", rows))
	return res
}
