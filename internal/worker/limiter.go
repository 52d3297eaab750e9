package worker

import (
	"context"
	"path/filepath"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter throttles event-file reads per directory. Datasets typically sit
// on shared network mounts where each directory maps to one storage pool;
// bounding the open rate per directory keeps a wide batch run from starving
// other users of the mount.
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a limiter with the given per-directory read rate.
func NewLimiter(readsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(readsPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until a read of the given file is within the rate limit of
// its directory, or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context, path string) error {
	return l.getLimiter(filepath.Dir(path)).Wait(ctx)
}

// Allow reports whether a read of the given file is within the rate limit
// without blocking.
func (l *Limiter) Allow(path string) bool {
	return l.getLimiter(filepath.Dir(path)).Allow()
}

// SetDirRate overrides the rate limit for one directory.
func (l *Limiter) SetDirRate(dir string, readsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}

	l.limiters[dir] = rate.NewLimiter(rate.Limit(readsPerSecond), burst)
}

func (l *Limiter) getLimiter(dir string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[dir]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[dir]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[dir] = limiter

	return limiter
}
