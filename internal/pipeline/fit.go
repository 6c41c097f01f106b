package pipeline

import (
	"context"

	"github.com/theirongolddev/kitnet/internal/store"
	"github.com/theirongolddev/kitnet/internal/viewer"
)

// FitModel frames the 3D asset at path and returns the settled viewer.
// Bounds are looked up in the SQLite cache unless noCache is set; a cache
// that cannot be opened is skipped silently.
func FitModel(ctx context.Context, path string, cam viewer.Camera, noCache bool) *viewer.Viewer {
	var cache viewer.BoundsCache
	if !noCache {
		if c, err := store.Open(store.CachePath()); err == nil {
			defer func() { _ = c.Close() }()
			cache = c
		}
	}

	v := viewer.New(path, cam, cache)
	_, _ = v.Load(ctx)
	return v
}
