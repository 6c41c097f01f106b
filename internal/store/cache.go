// Package store provides a SQLite-backed cache for measured 3D asset bounds.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/kitnet/internal/viewer"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed bounds caching.
type Cache struct {
	db *sql.DB
}

// CachePath returns the default database location under the XDG cache dir.
func CachePath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "kitnet", "bounds.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "kitnet", "bounds.db")
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Entry is one cached asset as listed by `kitnet config`.
type Entry struct {
	Path       string
	SizeBytes  int64
	Box        viewer.Box3
	MeasuredAt time.Time
}

// Entries lists the cached assets ordered by path.
func (c *Cache) Entries() ([]Entry, error) {
	rows, err := c.db.Query(`SELECT b.file_path, f.size_bytes, b.measured_at,
		b.min_x, b.min_y, b.min_z, b.max_x, b.max_y, b.max_z
		FROM model_bounds b JOIN file_tracker f ON f.file_path = b.file_path
		ORDER BY b.file_path`)
	if err != nil {
		return nil, fmt.Errorf("listing cached bounds: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var measured string
		if err := rows.Scan(&e.Path, &e.SizeBytes, &measured,
			&e.Box.Min.X, &e.Box.Min.Y, &e.Box.Min.Z,
			&e.Box.Max.X, &e.Box.Max.Y, &e.Box.Max.Z); err != nil {
			return nil, fmt.Errorf("scanning cached bounds: %w", err)
		}
		// A malformed timestamp only loses the date
		e.MeasuredAt, _ = time.Parse(time.RFC3339, measured)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LookupBounds returns the cached bounds for path if the file still has the
// given mtime and size. A changed file is a miss, not an error.
func (c *Cache) LookupBounds(path string, mtimeNs, size int64) (viewer.Box3, bool, error) {
	var b viewer.Box3
	err := c.db.QueryRow(`SELECT b.min_x, b.min_y, b.min_z, b.max_x, b.max_y, b.max_z
		FROM model_bounds b JOIN file_tracker f ON f.file_path = b.file_path
		WHERE b.file_path = ? AND f.mtime_ns = ? AND f.size_bytes = ?`,
		path, mtimeNs, size,
	).Scan(&b.Min.X, &b.Min.Y, &b.Min.Z, &b.Max.X, &b.Max.Y, &b.Max.Z)
	if errors.Is(err, sql.ErrNoRows) {
		return viewer.Box3{}, false, nil
	}
	if err != nil {
		return viewer.Box3{}, false, err
	}
	return b, true, nil
}

// StoreBounds records measured bounds and the file's tracking info.
func (c *Cache) StoreBounds(path string, mtimeNs, size int64, box viewer.Box3) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO model_bounds
		(file_path, min_x, min_y, min_z, max_x, max_y, max_z, measured_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		path, box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z, now,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes)
		VALUES (?, ?, ?)`, path, mtimeNs, size)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Forget removes a file's bounds and tracking entry.
func (c *Cache) Forget(path string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM model_bounds WHERE file_path = ?", path); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM file_tracker WHERE file_path = ?", path); err != nil {
		return err
	}
	return tx.Commit()
}

// Count returns the number of cached assets.
func (c *Cache) Count() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM model_bounds").Scan(&count)
	return count, err
}
