package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/vastucartapps/jyotish/internal/model"
)

// Cache stores serialised reports by key
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// keyVersion changes whenever the report layout changes
const keyVersion = "jyotish:v1:"

// ReportKey derives a stable key from everything an evaluation depends on:
// the placements, the reference date, the Moon's nakshatra and salt (the
// transit anchor in practice). Subject and source path are not part of it.
func ReportKey(in model.ChartInput, salt string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "asc=%d;", int(in.Chart.Ascendant))
	for _, g := range model.AllGrahas {
		p, ok := in.Chart.Planets[g]
		if !ok {
			fmt.Fprintf(&b, "%s=-;", g)
			continue
		}
		fmt.Fprintf(&b, "%s=%d/%d;", g, p.House, int(p.Sign))
	}
	fmt.Fprintf(&b, "ref=%s;", in.ReferenceDate.UTC().Format(time.RFC3339Nano))
	if in.MoonNakshatra != nil {
		fmt.Fprintf(&b, "nak=%d;", *in.MoonNakshatra)
	}
	b.WriteString("salt=" + salt)

	hash := sha256.Sum256([]byte(b.String()))
	return keyVersion + hex.EncodeToString(hash[:])
}

// FromConfig builds the cache described by cfg, or nil when caching is off
func FromConfig(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	memory := NewMemoryCache(cfg.MemoryTTL, 10*time.Minute)
	if cfg.DiskDir == "" {
		return NewLayeredCache(memory, nil)
	}
	return NewLayeredCache(memory, NewDiskCache(cfg.DiskDir, cfg.DiskTTL))
}
