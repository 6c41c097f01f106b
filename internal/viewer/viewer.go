package viewer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// loadBounds is swapped out in tests.
var loadBounds = LoadBounds

// State is the lifecycle of one asset load.
type State int

const (
	StateLoading State = iota
	StateFitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateFitted:
		return "fitted"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// BoundsCache remembers measured asset bounds keyed by path, modification
// time and size, so unchanged assets are not parsed again.
type BoundsCache interface {
	LookupBounds(path string, mtimeNs, size int64) (Box3, bool, error)
	StoreBounds(path string, mtimeNs, size int64, box Box3) error
}

// Viewer frames one asset. It moves from StateLoading to StateFitted or
// StateFailed exactly once; later Load calls return the recorded outcome.
// Any camera movement after that belongs to the user.
type Viewer struct {
	path  string
	cam   Camera
	cache BoundsCache

	mu        sync.Mutex
	state     State
	result    FitResult
	err       error
	fromCache bool
}

// New returns a viewer for the asset at path. cache may be nil.
func New(path string, cam Camera, cache BoundsCache) *Viewer {
	return &Viewer{path: path, cam: cam, cache: cache}
}

// Path returns the asset path.
func (v *Viewer) Path() string { return v.path }

// State returns the current lifecycle state.
func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Result returns the fit once the viewer has reached StateFitted.
func (v *Viewer) Result() (FitResult, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result, v.state == StateFitted
}

// Err returns the load failure, if any.
func (v *Viewer) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// FromCache reports whether the bounds came from the cache.
func (v *Viewer) FromCache() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fromCache
}

// Load measures and frames the asset. The viewer is decorative: callers
// should report a failure and carry on rendering the rest of the page.
func (v *Viewer) Load(ctx context.Context) (FitResult, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.state {
	case StateFitted:
		return v.result, nil
	case StateFailed:
		return FitResult{}, v.err
	}

	res, cached, err := v.load(ctx)
	if err != nil {
		v.state = StateFailed
		v.err = err
		return FitResult{}, err
	}
	v.state = StateFitted
	v.result = res
	v.fromCache = cached
	return res, nil
}

func (v *Viewer) load(ctx context.Context) (FitResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return FitResult{}, false, err
	}
	if v.path == "" {
		return FitResult{}, false, fmt.Errorf("no model configured")
	}

	abs, err := filepath.Abs(v.path)
	if err != nil {
		return FitResult{}, false, fmt.Errorf("resolving %s: %w", v.path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return FitResult{}, false, fmt.Errorf("stat model: %w", err)
	}
	mtime, size := info.ModTime().UnixNano(), info.Size()

	if v.cache != nil {
		if box, ok, err := v.cache.LookupBounds(abs, mtime, size); err == nil && ok {
			res, err := Fit(box, v.cam)
			return res, true, err
		}
	}

	box, err := parseBounds(ctx, abs)
	if err != nil {
		return FitResult{}, false, err
	}

	res, err := Fit(box, v.cam)
	if err != nil {
		return FitResult{}, false, err
	}

	if v.cache != nil {
		_ = v.cache.StoreBounds(abs, mtime, size, box)
	}
	return res, false, nil
}

type boundsResult struct {
	box Box3
	err error
}

// parseBounds runs the parse off the caller's goroutine so a cancelled
// context returns at once. The parse itself finishes in the background.
func parseBounds(ctx context.Context, path string) (Box3, error) {
	done := make(chan boundsResult, 1)
	go func() {
		box, err := loadBounds(path)
		done <- boundsResult{box, err}
	}()

	select {
	case <-ctx.Done():
		return Box3{}, ctx.Err()
	case r := <-done:
		return r.box, r.err
	}
}
