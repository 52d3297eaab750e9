package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dcarber/spinesel/internal/analysis"
	"github.com/dcarber/spinesel/internal/model"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Dir = t.TempDir()
	return cfg
}

func newTestPipeline(t *testing.T, cfg *model.Config) *Pipeline {
	t.Helper()
	actx, err := analysis.NewContext(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	p, err := New(cfg, actx)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func writeEvents(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.ndjson")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const (
	signalEvent = `{"run":1,"event":1,"truth":[{"vertex":{"x":0,"y":0,"z":230},"is_neutrino":true,"is_cc":true,"particles":[{"pid":2,"is_primary":true,"is_contained":true,"energy_init":505.658}]}]}`
	cosmicEvent = `{"run":1,"event":2,"truth":[{"vertex":{"x":0,"y":0,"z":230},"is_neutrino":false,"particles":[]}]}`
)

func TestPipeline_ProcessFile(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	path := writeEvents(t, signalEvent, cosmicEvent)
	report, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}

	if report.Events != 2 {
		t.Errorf("Events = %d, want 2", report.Events)
	}
	if report.Interactions != 2 {
		t.Errorf("Interactions = %d, want 2", report.Interactions)
	}
	if report.Counts[model.CategorySignalContained] != 1 {
		t.Errorf("signal_contained = %d, want 1", report.Counts[model.CategorySignalContained])
	}
	if report.Counts[model.CategoryCosmic] != 1 {
		t.Errorf("cosmic = %d, want 1", report.Counts[model.CategoryCosmic])
	}
	if report.ID == "" || report.Fingerprint != cfg.Fingerprint() {
		t.Errorf("report identity incomplete: %+v", report)
	}
}

func TestPipeline_ProcessFile_Warnings(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	path := writeEvents(t, signalEvent, "{broken", cosmicEvent)
	report, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if report.Events != 2 {
		t.Errorf("Events = %d, want 2", report.Events)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("Warnings = %v, want 1 entry", report.Warnings)
	}
}

func TestPipeline_ProcessFile_Cached(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	path := writeEvents(t, signalEvent)

	first, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	// The second run is served from the cache: same report identity.
	if first.ID != second.ID {
		t.Errorf("cached report ID %s differs from original %s", second.ID, first.ID)
	}

	// A new pipeline over the same cache directory also hits the cache.
	p2 := newTestPipeline(t, cfg)
	third, err := p2.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if third.ID != first.ID {
		t.Error("disk cache should serve the original report across pipelines")
	}
}

func TestPipeline_ProcessFile_CacheInvalidation(t *testing.T) {
	cacheDir := t.TempDir()

	cfg := model.DefaultConfig()
	cfg.Cache.Dir = cacheDir
	p := newTestPipeline(t, cfg)

	path := writeEvents(t, signalEvent)
	first, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	// A config change that affects classification invalidates the entry.
	cfg2 := model.DefaultConfig()
	cfg2.Cache.Dir = cacheDir
	cfg2.Selection.MuonKEThreshold = 500
	p2 := newTestPipeline(t, cfg2)

	second, err := p2.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if second.ID == first.ID {
		t.Error("changed fingerprint should force a recompute")
	}
	if second.Counts[model.CategoryOutOfPhaseSpace] != 1 {
		t.Errorf("400 MeV muon under a 500 MeV threshold should be out of phase space: %+v", second.Counts)
	}
}

func TestPipeline_ProcessFile_NoCache(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = false
	p := newTestPipeline(t, cfg)

	path := writeEvents(t, signalEvent)
	first, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Error("with caching disabled every run should produce a fresh report")
	}
}

func TestPipeline_ProcessFile_Missing(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg)

	if _, err := p.ProcessFile(context.Background(), "/nonexistent/events.ndjson"); err == nil {
		t.Error("expected error for missing file")
	}
}
