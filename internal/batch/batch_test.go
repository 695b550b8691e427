package batch

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkyourbin/nlbn-gui/internal/apperror"
	"github.com/linkyourbin/nlbn-gui/internal/easyeda"
	"github.com/linkyourbin/nlbn-gui/internal/orchestrator"
)

type recordingFetcher struct {
	mu       sync.Mutex
	inFlight int
	maxSeen  int
	fail     map[string]bool
}

func (f *recordingFetcher) GetComponentData(ctx context.Context, lcscID string) (*easyeda.ComponentData, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	fail := f.fail[lcscID]
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if fail {
		return nil, apperror.NotFound(lcscID)
	}
	return &easyeda.ComponentData{
		LcscID:        lcscID,
		Title:         lcscID,
		DataStr:       []string{"R~10~10~20~20~0.5~0"},
		PackageDetail: []string{"PAD~ROUND~10~20~30~30~1~~1~5~~0~gge1~0"},
	}, nil
}

func (f *recordingFetcher) Download3DObj(ctx context.Context, uuid string) ([]byte, error) {
	return nil, fmt.Errorf("not used")
}

func (f *recordingFetcher) Download3DStep(ctx context.Context, uuid string) ([]byte, error) {
	return nil, fmt.Errorf("not used")
}

func TestRunConvertsEveryID(t *testing.T) {
	dir := t.TempDir()
	fetcher := &recordingFetcher{fail: map[string]bool{}}
	ids := []string{"C1", "C2", "C3", "C4", "C5"}

	result := Run(context.Background(), fetcher, ids, orchestrator.Options{
		OutputDir:     dir,
		ConvertSymbol: true,
		TargetKicad:   true,
	}, 2, nil)

	require.Equal(t, 5, result.Total)
	assert.Equal(t, 5, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	for i, r := range result.Results {
		require.NotNil(t, r)
		assert.Equal(t, ids[i], r.LcscID)
	}
}

func TestRunRespectsConcurrencyCeiling(t *testing.T) {
	dir := t.TempDir()
	fetcher := &recordingFetcher{fail: map[string]bool{}}
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = fmt.Sprintf("C%d", i)
	}

	Run(context.Background(), fetcher, ids, orchestrator.Options{OutputDir: dir, ConvertSymbol: true, TargetKicad: true}, 3, nil)

	assert.LessOrEqual(t, fetcher.maxSeen, 3)
}

func TestRunReportsProgressAndFailures(t *testing.T) {
	dir := t.TempDir()
	fetcher := &recordingFetcher{fail: map[string]bool{"C2": true}}
	ids := []string{"C1", "C2", "C3"}

	var mu sync.Mutex
	var events []Progress
	result := Run(context.Background(), fetcher, ids, orchestrator.Options{OutputDir: dir, ConvertSymbol: true, TargetKicad: true}, 4, func(p Progress) {
		mu.Lock()
		events = append(events, p)
		mu.Unlock()
	})

	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	// One "converting" and one terminal event per job (spec.md §4.11).
	assert.Len(t, events, 6)

	perID := map[string][]Status{}
	for _, e := range events {
		perID[e.LcscID] = append(perID[e.LcscID], e.Status)
	}
	assert.Equal(t, []Status{StatusConverting, StatusFailed}, perID["C2"])
	assert.Equal(t, []Status{StatusConverting, StatusCompleted}, perID["C1"])
	assert.Equal(t, []Status{StatusConverting, StatusCompleted}, perID["C3"])
}

func TestRunDefaultsConcurrencyWhenNonPositive(t *testing.T) {
	dir := t.TempDir()
	fetcher := &recordingFetcher{fail: map[string]bool{}}
	result := Run(context.Background(), fetcher, []string{"C1"}, orchestrator.Options{OutputDir: dir, ConvertSymbol: true, TargetKicad: true}, 0, nil)
	assert.Equal(t, 1, result.Succeeded)
}
