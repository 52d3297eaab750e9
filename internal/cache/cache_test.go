package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dcarber/spinesel/internal/model"
)

func statFile(t *testing.T, path string) os.FileInfo {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	return info
}

func TestKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run1.ndjson")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	info := statFile(t, path)
	k1 := Key(path, info, "fp1")
	k2 := Key(path, info, "fp1")
	if k1 != k2 {
		t.Error("same file and fingerprint should produce the same key")
	}

	if Key(path, info, "fp2") == k1 {
		t.Error("different fingerprint should produce a different key")
	}

	// Changing the file contents changes size and therefore the key.
	if err := os.WriteFile(path, []byte("{}\n{}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if Key(path, statFile(t, path), "fp1") == k1 {
		t.Error("modified file should produce a different key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("empty cache should miss")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	got, found := c.Get("k")
	if !found || string(got) != "v" {
		t.Errorf("Get = %q, %v; want v, true", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("k"); found {
		t.Error("deleted key should miss")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set("spinesel:v1:abc", []byte("payload"), time.Minute); err != nil {
		t.Fatal(err)
	}
	got, found := c.Get("spinesel:v1:abc")
	if !found || string(got) != "payload" {
		t.Errorf("Get = %q, %v; want payload, true", got, found)
	}

	// A fresh instance over the same directory sees the entry.
	c2 := NewDiskCache(dir, time.Minute)
	if _, found := c2.Get("spinesel:v1:abc"); !found {
		t.Error("disk cache should survive process restarts")
	}

	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, found := c.Get("spinesel:v1:abc"); found {
		t.Error("cleared cache should miss")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("v"), time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expired entry should miss")
	}
}

func TestLayeredCache(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	got, found := c.Get("k")
	if !found || string(got) != "v" {
		t.Errorf("Get = %q, %v; want v, true", got, found)
	}

	// A second layered cache over the same directory has a cold memory
	// layer but finds the entry on disk.
	c2 := NewLayeredCache(time.Minute, dir, time.Minute)
	got, found = c2.Get("k")
	if !found || string(got) != "v" {
		t.Error("layered cache should fall back to disk")
	}
}

func TestReportCache(t *testing.T) {
	backend := NewMemoryCache(time.Minute, time.Minute)
	rc := NewReportCache(backend, time.Minute)

	if got := rc.Get("missing"); got != nil {
		t.Error("miss should return nil")
	}

	report := &model.Report{ID: "r1", Source: "/data/run1.ndjson", Events: 7}
	report.Add(model.CategorySignalContained)

	if err := rc.Put("k", report); err != nil {
		t.Fatal(err)
	}
	got := rc.Get("k")
	if got == nil {
		t.Fatal("expected cached report")
	}
	if got.ID != "r1" || got.Events != 7 || got.Counts[model.CategorySignalContained] != 1 {
		t.Errorf("round-tripped report mismatch: %+v", got)
	}
}

func TestReportCache_Corrupt(t *testing.T) {
	backend := NewMemoryCache(time.Minute, time.Minute)
	rc := NewReportCache(backend, time.Minute)

	if err := backend.Set("k", []byte("{not json"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if got := rc.Get("k"); got != nil {
		t.Error("corrupt entry should be treated as a miss")
	}
	if _, found := backend.Get("k"); found {
		t.Error("corrupt entry should be evicted")
	}
}
