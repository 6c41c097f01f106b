package store

import (
	"path/filepath"
	"testing"

	"github.com/theirongolddev/kitnet/internal/viewer"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "sub", "bounds.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestBoundsRoundTrip(t *testing.T) {
	c := openTestCache(t)
	box := viewer.Box3{Min: viewer.Vec3{X: -1.5, Y: 0, Z: -2}, Max: viewer.Vec3{X: 3, Y: 4.25, Z: 2}}

	if _, ok, err := c.LookupBounds("/m/casa.glb", 10, 20); err != nil || ok {
		t.Fatalf("empty cache lookup = %v, %v", ok, err)
	}

	if err := c.StoreBounds("/m/casa.glb", 10, 20, box); err != nil {
		t.Fatalf("StoreBounds() error = %v", err)
	}
	got, ok, err := c.LookupBounds("/m/casa.glb", 10, 20)
	if err != nil || !ok {
		t.Fatalf("LookupBounds = %v, %v", ok, err)
	}
	if got != box {
		t.Errorf("bounds = %+v, want %+v", got, box)
	}

}

func TestEntriesListsCachedAssets(t *testing.T) {
	c := openTestCache(t)
	boxA := viewer.Box3{Max: viewer.Vec3{X: 1, Y: 2, Z: 3}}
	boxB := viewer.Box3{Min: viewer.Vec3{X: -1}, Max: viewer.Vec3{X: 4, Y: 4, Z: 4}}
	if err := c.StoreBounds("/m/z.glb", 1, 2048, boxB); err != nil {
		t.Fatal(err)
	}
	if err := c.StoreBounds("/m/a.glb", 1, 512, boxA); err != nil {
		t.Fatal(err)
	}

	entries, err := c.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Path != "/m/a.glb" || entries[1].Path != "/m/z.glb" {
		t.Errorf("entries not ordered by path: %q, %q", entries[0].Path, entries[1].Path)
	}
	if entries[0].SizeBytes != 512 || entries[0].Box != boxA {
		t.Errorf("entry = %+v", entries[0])
	}
	if entries[1].MeasuredAt.IsZero() {
		t.Error("measured_at was not parsed")
	}
}

func TestLookupMissesOnChangedFile(t *testing.T) {
	c := openTestCache(t)
	box := viewer.Box3{Max: viewer.Vec3{X: 1, Y: 1, Z: 1}}
	if err := c.StoreBounds("/m/a.glb", 10, 20, box); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := c.LookupBounds("/m/a.glb", 11, 20); ok {
		t.Error("hit after mtime change")
	}
	if _, ok, _ := c.LookupBounds("/m/a.glb", 10, 21); ok {
		t.Error("hit after size change")
	}

	// Re-storing replaces the old entry.
	if err := c.StoreBounds("/m/a.glb", 11, 20, box); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.LookupBounds("/m/a.glb", 11, 20); !ok {
		t.Error("miss after re-store")
	}
	if n, _ := c.Count(); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestForget(t *testing.T) {
	c := openTestCache(t)
	box := viewer.Box3{Max: viewer.Vec3{X: 1, Y: 1, Z: 1}}
	for _, p := range []string{"/a.glb", "/b.glb"} {
		if err := c.StoreBounds(p, 1, 1, box); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Forget("/a.glb"); err != nil {
		t.Fatal(err)
	}
	if n, _ := c.Count(); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
	entries, _ := c.Entries()
	if len(entries) != 1 || entries[0].Path != "/b.glb" {
		t.Errorf("entries after Forget = %+v, want only /b.glb", entries)
	}
}

func TestCachePathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	if got, want := CachePath(), filepath.Join(dir, "kitnet", "bounds.db"); got != want {
		t.Errorf("CachePath = %q, want %q", got, want)
	}
}

var _ viewer.BoundsCache = (*Cache)(nil)
