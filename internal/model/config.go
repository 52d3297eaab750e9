package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Config holds the complete spinesel configuration.
type Config struct {
	Selection   SelectionConfig   `yaml:"selection" json:"selection"`
	Geometry    GeometryConfig    `yaml:"geometry" json:"geometry"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" json:"rate_limit"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// SelectionConfig holds the kinematic thresholds used by the selection.
type SelectionConfig struct {
	MuonKEThreshold     float64 `yaml:"muon_ke_threshold" json:"muon_ke_threshold"`         // MeV
	ElectronKEThreshold float64 `yaml:"electron_ke_threshold" json:"electron_ke_threshold"` // MeV
}

// BoxConfig describes an axis-aligned detector volume in cm.
type BoxConfig struct {
	XMin float64 `yaml:"x_min" json:"x_min"`
	XMax float64 `yaml:"x_max" json:"x_max"`
	YMin float64 `yaml:"y_min" json:"y_min"`
	YMax float64 `yaml:"y_max" json:"y_max"`
	ZMin float64 `yaml:"z_min" json:"z_min"`
	ZMax float64 `yaml:"z_max" json:"z_max"`
}

// GeometryConfig holds the fiducial and active volume definitions. The
// fiducial box must lie strictly inside the active volume box.
type GeometryConfig struct {
	Fiducial BoxConfig `yaml:"fiducial" json:"fiducial"`
	Active   BoxConfig `yaml:"active" json:"active"`
}

// ConcurrencyConfig controls parallel evaluation.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// RateLimitConfig throttles dataset reads. Event files commonly live on
// shared network filesystems where unbounded parallel reads starve other
// users of the mount.
type RateLimitConfig struct {
	ReadsPerSecond float64 `yaml:"reads_per_second" json:"reads_per_second"`
	BurstSize      int     `yaml:"burst_size" json:"burst_size"`
}

// CacheConfig controls report caching between runs.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Dir     string        `yaml:"dir" json:"dir"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" json:"verbose"`
	Format  string `yaml:"format" json:"format"` // "text" or "json"
}

// DefaultConfig returns the reference configuration: 25 MeV muon and
// electron thresholds and the reference fiducial/active volume boxes.
func DefaultConfig() *Config {
	return &Config{
		Selection: SelectionConfig{
			MuonKEThreshold:     25.0,
			ElectronKEThreshold: 25.0,
		},
		Geometry: GeometryConfig{
			Fiducial: BoxConfig{XMin: -190, XMax: 190, YMin: -190, YMax: 190, ZMin: 10, ZMax: 450},
			Active:   BoxConfig{XMin: -200, XMax: 200, YMin: -200, YMax: 200, ZMin: 0, ZMax: 500},
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			ReadsPerSecond: 50,
			BurstSize:      10,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "", // resolved to ~/.spinesel/cache at startup
			TTL:     24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose: false,
			Format:  "text",
		},
	}
}

// Fingerprint returns a short hash of every setting that affects
// classification results. Cached reports keyed on a stale fingerprint are
// invalid and must be recomputed.
func (c *Config) Fingerprint() string {
	h := sha256.New()
	fmt.Fprintf(h, "%v|%v|%v", c.Selection, c.Geometry.Fiducial, c.Geometry.Active)
	return hex.EncodeToString(h.Sum(nil))[:16]
}
