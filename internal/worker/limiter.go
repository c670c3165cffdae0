package worker

import (
	"context"
	"path/filepath"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter throttles chart loads per source directory, so a batch spanning a
// slow network mount does not starve local charts.
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a limiter allowing perSecond loads per source with the
// given burst. A non-positive burst defaults to 5.
func NewLimiter(perSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(perSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until the source of path may load another chart
func (l *Limiter) Wait(ctx context.Context, path string) error {
	return l.getLimiter(sourceOf(path)).Wait(ctx)
}

// Allow reports whether a load from path's source may proceed now
func (l *Limiter) Allow(path string) bool {
	return l.getLimiter(sourceOf(path)).Allow()
}

func (l *Limiter) getLimiter(source string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[source]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[source]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[source] = limiter
	return limiter
}

// SetSourceRate overrides the rate for one source directory
func (l *Limiter) SetSourceRate(dir string, perSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}

	l.limiters[filepath.Clean(dir)] = rate.NewLimiter(rate.Limit(perSecond), burst)
}

// sourceOf keys a chart path by its cleaned parent directory
func sourceOf(path string) string {
	return filepath.Dir(filepath.Clean(path))
}
