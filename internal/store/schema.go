package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS model_bounds (
    file_path            TEXT PRIMARY KEY,
    min_x                REAL NOT NULL,
    min_y                REAL NOT NULL,
    min_z                REAL NOT NULL,
    max_x                REAL NOT NULL,
    max_y                REAL NOT NULL,
    max_z                REAL NOT NULL,
    measured_at          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL
);
`
