// Package batch converts a list of components concurrently, bounded by
// a weighted semaphore, and reports per-item progress as each starts and
// finishes.
// The original desktop implementation converted its list sequentially
// from a single Tauri command; running the independent per-part
// conversions concurrently is a deliberate redesign (see DESIGN.md).
package batch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/linkyourbin/nlbn-gui/internal/easyedaapi"
	"github.com/linkyourbin/nlbn-gui/internal/logging"
	"github.com/linkyourbin/nlbn-gui/internal/orchestrator"
)

// DefaultConcurrency caps in-flight conversions when Config.BatchConcurrency
// is unset or non-positive.
const DefaultConcurrency = 4

// Status is the lifecycle stage of one item's conversion, reported via
// Progress.
type Status string

const (
	StatusConverting Status = "converting"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Progress is a single item's progress event. Current is the 1-based
// order in which the item entered the work phase; the item's start and
// terminal events carry the same value.
type Progress struct {
	Current int
	Total   int
	LcscID  string
	Status  Status
}

// ProgressFunc receives one Progress event per status transition. It is
// called from whichever goroutine runs the item; callers that
// update shared UI state must synchronize internally.
type ProgressFunc func(Progress)

// Result aggregates one Run's outcome.
type Result struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []*orchestrator.Result
}

// Run converts every id in lcscIDs against opts, running at most
// concurrency conversions at once. A concurrency of 0 or less falls
// back to DefaultConcurrency. onProgress may be nil.
func Run(ctx context.Context, fetcher easyedaapi.Fetcher, lcscIDs []string, opts orchestrator.Options, concurrency int, onProgress ProgressFunc) *Result {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(lcscIDs)
	results := make([]*orchestrator.Result, total)
	var entered int64

	sem := semaphore.NewWeighted(int64(concurrency))
	var wg sync.WaitGroup

	for i, id := range lcscIDs {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Context cancelled: record the remainder as failed without
			// spawning more work.
			results[i] = &orchestrator.Result{LcscID: id, Success: false, Message: err.Error()}
			continue
		}

		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			defer sem.Release(1)

			// current is assigned once, as the job enters the work phase,
			// and carried by both the start and completion notifications
			// for this job (spec.md §4.11).
			n := int(atomic.AddInt64(&entered, 1))
			if onProgress != nil {
				onProgress(Progress{Current: n, Total: total, LcscID: id, Status: StatusConverting})
			}

			results[i] = runOne(ctx, fetcher, id, opts)

			status := StatusCompleted
			if !results[i].Success {
				status = StatusFailed
			}
			if onProgress != nil {
				onProgress(Progress{Current: n, Total: total, LcscID: id, Status: status})
			}
		}(i, id)
	}

	wg.Wait()

	out := &Result{Total: total, Results: results}
	for _, r := range results {
		if r != nil && r.Success {
			out.Succeeded++
		} else {
			out.Failed++
		}
	}
	return out
}

// runOne converts a single component, turning a panic in the conversion
// path into a synthetic failed result instead of taking down the whole
// batch.
func runOne(ctx context.Context, fetcher easyedaapi.Fetcher, lcscID string, opts orchestrator.Options) (result *orchestrator.Result) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("panic during conversion", fmt.Errorf("%v", r), logging.WithJob(lcscID))
			result = &orchestrator.Result{LcscID: lcscID, Success: false, Message: fmt.Sprintf("panic: %v", r)}
		}
	}()
	return orchestrator.Convert(ctx, fetcher, lcscID, opts)
}
