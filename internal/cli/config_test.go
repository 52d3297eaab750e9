package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInit_CreatesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := configInitCmd.RunE(configInitCmd, nil); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	path := filepath.Join(home, ".spinesel", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated config: %v", err)
	}

	content := string(data)
	if !strings.HasPrefix(content, "# spinesel configuration file") {
		t.Errorf("missing header comment, got prefix %q", content[:min(len(content), 40)])
	}
	for _, key := range []string{"muon_ke_threshold", "fiducial", "active"} {
		if !strings.Contains(content, key) {
			t.Errorf("generated config missing %q", key)
		}
	}
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := configInitCmd.RunE(configInitCmd, nil); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	err := configInitCmd.RunE(configInitCmd, nil)
	if err == nil {
		t.Fatal("expected error when config file already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigInit_ReportsWriteFailure(t *testing.T) {
	home := t.TempDir()
	blocker := filepath.Join(home, "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	// HOME points at a regular file, so creating ~/.spinesel fails and
	// the command must surface the error instead of reporting success.
	t.Setenv("HOME", blocker)

	if err := configInitCmd.RunE(configInitCmd, nil); err == nil {
		t.Fatal("expected error when config directory cannot be created")
	}
}
