package cache

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vastucartapps/jyotish/internal/model"
)

func sampleInput() model.ChartInput {
	planets := make(map[model.Graha]model.Placement)
	for i, g := range model.AllGrahas {
		planets[g] = model.Placement{House: i + 1, Sign: model.Aries.Add(i)}
	}
	return model.ChartInput{
		Subject:       "a",
		Chart:         model.Chart{Ascendant: model.Aries, Planets: planets},
		ReferenceDate: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
	}
}

func TestReportKey(t *testing.T) {
	base := sampleInput()
	key := ReportKey(base, "anchor")

	if !strings.HasPrefix(key, "jyotish:v1:") {
		t.Errorf("expected versioned prefix, got %q", key)
	}

	renamed := sampleInput()
	renamed.Subject = "b"
	renamed.SourcePath = "/tmp/b.yaml"
	if ReportKey(renamed, "anchor") != key {
		t.Error("subject and path should not change the key")
	}

	moved := sampleInput()
	moved.Chart.Planets[model.Sun] = model.Placement{House: 2, Sign: model.Taurus}
	if ReportKey(moved, "anchor") == key {
		t.Error("a moved planet must change the key")
	}

	later := sampleInput()
	later.ReferenceDate = later.ReferenceDate.Add(24 * time.Hour)
	if ReportKey(later, "anchor") == key {
		t.Error("the reference date must change the key")
	}

	nak := 22
	withNak := sampleInput()
	withNak.MoonNakshatra = &nak
	if ReportKey(withNak, "anchor") == key {
		t.Error("the Moon nakshatra must change the key")
	}

	if ReportKey(base, "other-anchor") == key {
		t.Error("the salt must change the key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss")
	}
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, ok := c.Get("k"); !ok || string(got) != "v" {
		t.Fatalf("expected hit with v, got %q %v", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}

	if err := c.Set("short", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("expected entry to expire")
	}

	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	key := ReportKey(sampleInput(), "anchor")

	if err := c.Set(key, []byte(`{"id":"1"}`), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := c.Get(key)
	if !ok || !bytes.Equal(got, []byte(`{"id":"1"}`)) {
		t.Fatalf("expected stored value, got %q %v", got, ok)
	}

	// A second instance over the same directory sees the entry.
	if _, ok := NewDiskCache(dir, time.Hour).Get(key); !ok {
		t.Error("expected entry to persist across instances")
	}

	if _, err := os.Stat(filepath.Join(dir, lockFileName)); err != nil {
		t.Errorf("expected lock file: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(matches) != 0 {
		t.Errorf("temporary files left behind: %v", matches)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	now = now.Add(59 * time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after expiry")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expected expired entry to be removed")
	}
}

func TestDiskCache_DeleteAndClear(t *testing.T) {
	c := NewDiskCache(t.TempDir(), 0)

	if err := c.Delete("absent"); err != nil {
		t.Errorf("deleting a missing key should succeed, got %v", err)
	}

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(k, []byte(k), 0); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	if err := c.Delete("a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("expected a to be gone")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	for _, k := range []string{"b", "c"} {
		if _, ok := c.Get(k); ok {
			t.Errorf("expected %s to be cleared", k)
		}
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	memory := NewMemoryCache(time.Minute, time.Minute)
	disk := NewDiskCache(t.TempDir(), time.Hour)
	c := NewLayeredCache(memory, disk)

	if err := disk.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := memory.Get("k"); ok {
		t.Fatal("memory should start empty")
	}

	if got, ok := c.Get("k"); !ok || string(got) != "v" {
		t.Fatalf("expected disk hit, got %q %v", got, ok)
	}
	if _, ok := memory.Get("k"); !ok {
		t.Error("expected disk hit to be promoted to memory")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after clear")
	}
}

func TestFromConfig(t *testing.T) {
	if c := FromConfig(model.CacheConfig{Enabled: false}); c != nil {
		t.Error("expected nil cache when disabled")
	}

	c := FromConfig(model.CacheConfig{Enabled: true, MemoryTTL: time.Minute})
	if c == nil {
		t.Fatal("expected a cache")
	}
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := c.Get("k"); !ok {
		t.Error("expected hit")
	}

	dir := t.TempDir()
	c = FromConfig(model.CacheConfig{Enabled: true, DiskDir: dir, DiskTTL: time.Hour})
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := NewDiskCache(dir, time.Hour).Get("k"); !ok {
		t.Error("expected the disk layer to be written")
	}
}
