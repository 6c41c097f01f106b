package viewer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// A minimal glTF: one translated node whose mesh spans [-1,1]x[-2,2]x[-3,3].
const testGLTF = `{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": [
    {"mesh": 0, "translation": [10, 0, 0], "children": [1]},
    {"mesh": 0, "scale": [2, 2, 2]}
  ],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{
    "componentType": 5126,
    "count": 2,
    "type": "VEC3",
    "min": [-1, -2, -3],
    "max": [1, 2, 3]
  }]
}`

func writeAsset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "casa.gltf")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBounds_WalksNodeHierarchy(t *testing.T) {
	box, err := LoadBounds(writeAsset(t, testGLTF))
	if err != nil {
		t.Fatalf("LoadBounds() error = %v", err)
	}
	// Child: translated by parent then scaled by 2 -> x in [8,12], y in [-4,4], z in [-6,6].
	want := Box3{Min: Vec3{8, -4, -6}, Max: Vec3{12, 4, 6}}
	if box != want {
		t.Errorf("bounds = %+v, want %+v", box, want)
	}
}

func TestLoadBounds_NoGeometry(t *testing.T) {
	path := writeAsset(t, `{"asset": {"version": "2.0"}, "scenes": [{"nodes": []}]}`)
	if _, err := LoadBounds(path); !errors.Is(err, ErrEmptyBounds) {
		t.Errorf("err = %v, want ErrEmptyBounds", err)
	}
}

type memCache struct {
	boxes  map[string]Box3
	stores int
}

func (m *memCache) LookupBounds(path string, _, _ int64) (Box3, bool, error) {
	b, ok := m.boxes[path]
	return b, ok, nil
}

func (m *memCache) StoreBounds(path string, _, _ int64, box Box3) error {
	m.boxes[path] = box
	m.stores++
	return nil
}

func TestViewer_SingleTransition(t *testing.T) {
	path := writeAsset(t, testGLTF)
	v := New(path, DefaultCamera(), nil)
	if v.State() != StateLoading {
		t.Fatalf("initial state = %v", v.State())
	}

	first, err := v.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v.State() != StateFitted {
		t.Fatalf("state = %v, want fitted", v.State())
	}

	// Replacing the file must not re-fit.
	if err := os.WriteFile(path, []byte(`{"asset":{"version":"2.0"}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	second, err := v.Load(context.Background())
	if err != nil || second != first {
		t.Errorf("second Load = %+v, %v; want first result", second, err)
	}
}

func TestViewer_FailureIsRecorded(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "missing.glb"), DefaultCamera(), nil)
	if _, err := v.Load(context.Background()); err == nil {
		t.Fatal("Load() of missing file returned nil error")
	}
	if v.State() != StateFailed || v.Err() == nil {
		t.Errorf("state = %v err = %v", v.State(), v.Err())
	}
	if _, ok := v.Result(); ok {
		t.Error("Result() reported a fit after failure")
	}
}

func TestViewer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := New(writeAsset(t, testGLTF), DefaultCamera(), nil)
	if _, err := v.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestViewer_CancelDuringParse(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	loadBounds = func(string) (Box3, error) {
		close(started)
		<-release
		return Box3{Max: Vec3{1, 1, 1}}, nil
	}
	t.Cleanup(func() {
		close(release)
		loadBounds = LoadBounds
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	v := New(writeAsset(t, testGLTF), DefaultCamera(), nil)
	if _, err := v.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if v.State() != StateFailed {
		t.Errorf("state = %v, want failed", v.State())
	}
}

func TestViewer_UsesCache(t *testing.T) {
	path := writeAsset(t, testGLTF)
	cache := &memCache{boxes: map[string]Box3{}}

	v := New(path, DefaultCamera(), cache)
	if _, err := v.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if cache.stores != 1 || v.FromCache() {
		t.Fatalf("stores = %d fromCache = %v", cache.stores, v.FromCache())
	}

	again := New(path, DefaultCamera(), cache)
	res, err := again.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !again.FromCache() || cache.stores != 1 {
		t.Errorf("second viewer fromCache = %v stores = %d", again.FromCache(), cache.stores)
	}
	if got := res.Size().MaxComponent(); !nearlyEqual(got, ReferenceSize) {
		t.Errorf("cached fit max dimension = %v", got)
	}
}
