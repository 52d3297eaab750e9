package cache

import (
	"encoding/json"
	"time"

	"github.com/dcarber/spinesel/internal/model"
)

// ReportCache stores classification reports behind a byte-level Cache.
type ReportCache struct {
	backend Cache
	ttl     time.Duration
}

// NewReportCache wraps a backend cache with report (de)serialization.
func NewReportCache(backend Cache, ttl time.Duration) *ReportCache {
	return &ReportCache{backend: backend, ttl: ttl}
}

// Get returns the cached report for key, or nil on a miss. A corrupt entry
// is treated as a miss and evicted.
func (c *ReportCache) Get(key string) *model.Report {
	data, found := c.backend.Get(key)
	if !found {
		return nil
	}
	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		_ = c.backend.Delete(key)
		return nil
	}
	return &report
}

// Put stores the report under key.
func (c *ReportCache) Put(key string, report *model.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.backend.Set(key, data, c.ttl)
}
