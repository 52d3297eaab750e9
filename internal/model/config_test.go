package model

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Selection.MuonKEThreshold != 25 {
		t.Errorf("muon threshold = %v, want 25", cfg.Selection.MuonKEThreshold)
	}
	if cfg.Geometry.Fiducial.ZMax != 450 || cfg.Geometry.Active.ZMax != 500 {
		t.Errorf("unexpected reference geometry: %+v", cfg.Geometry)
	}
	if cfg.Concurrency.Workers < 1 {
		t.Errorf("workers = %d, want at least 1", cfg.Concurrency.Workers)
	}
}

func TestConfig_Fingerprint(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical configs should share a fingerprint")
	}
	if len(a.Fingerprint()) != 16 {
		t.Errorf("fingerprint length = %d, want 16", len(a.Fingerprint()))
	}

	b.Selection.MuonKEThreshold = 100
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("changing a selection threshold must change the fingerprint")
	}

	c := DefaultConfig()
	c.Geometry.Fiducial.XMax = 180
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("changing the geometry must change the fingerprint")
	}

	// Settings that do not affect classification leave the fingerprint alone.
	d := DefaultConfig()
	d.Concurrency.Workers = 32
	d.Output.Verbose = true
	if a.Fingerprint() != d.Fingerprint() {
		t.Error("concurrency and output settings must not affect the fingerprint")
	}
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Selection.MuonKEThreshold = 143.425

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if loaded.Selection.MuonKEThreshold != 143.425 {
		t.Errorf("threshold after round trip = %v, want 143.425", loaded.Selection.MuonKEThreshold)
	}
	if loaded.Geometry.Active != cfg.Geometry.Active {
		t.Errorf("active volume after round trip = %+v, want %+v", loaded.Geometry.Active, cfg.Geometry.Active)
	}
}
