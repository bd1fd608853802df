package cache

import (
	"testing"
	"time"
)

func TestKey_Deterministic(t *testing.T) {
	a := Key("john smith", "augment=false")
	b := Key("john smith", "augment=false")
	if a != b {
		t.Error("same parts must produce the same key")
	}
	if a == Key("john smith", "augment=true") {
		t.Error("different fingerprints must produce different keys")
	}
	// Joining must not be ambiguous across part boundaries
	if Key("ab", "c") == Key("a", "bc") {
		t.Error("part boundaries must be preserved")
	}
}

func roundTrip(t *testing.T, c Cache) {
	t.Helper()

	if _, found := c.Get("missing"); found {
		t.Error("unexpected hit for missing key")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, found := c.Get("k")
	if !found || string(got) != "value" {
		t.Errorf("Get = (%q, %t), want (value, true)", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("key should be gone after Delete")
	}

	if err := c.Set("k2", []byte("v2"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get("k2"); found {
		t.Error("key should be gone after Clear")
	}
}

func TestMemoryCache(t *testing.T) {
	roundTrip(t, NewMemoryCache(time.Minute, time.Minute))
}

func TestDiskCache(t *testing.T) {
	roundTrip(t, NewDiskCache(t.TempDir(), time.Minute))
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	if err := c.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expired entry must not be returned")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)
	roundTrip(t, c)

	// Seed disk only, then read through the layered cache
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("seeded", []byte("from-disk"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, found := c.Get("seeded")
	if !found || string(got) != "from-disk" {
		t.Errorf("layered Get = (%q, %t)", got, found)
	}

	// The hit should now be served from memory even if the disk entry goes away
	if err := disk.Delete("seeded"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("seeded"); !found {
		t.Error("disk hit was not promoted to memory")
	}
}
