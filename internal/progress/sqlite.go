package progress

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// recordKey is the fixed key the single progress record lives under.
const recordKey = "course_progress"

const schema = `
CREATE TABLE IF NOT EXISTS progress (
	key  TEXT PRIMARY KEY,
	data BLOB NOT NULL
);`

// SQLiteBackend persists the progress record in a single-row SQLite table.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at dsn,
// applies recommended pragmas, and ensures the progress table exists.
func OpenSQLite(dsn string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (b *SQLiteBackend) DB() *sql.DB {
	return b.db
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) Read() ([]byte, bool, error) {
	var data []byte
	err := b.db.QueryRow(`SELECT data FROM progress WHERE key = ?`, recordKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read progress record: %w", err)
	}
	return data, true, nil
}

func (b *SQLiteBackend) Write(data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO progress (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`,
		recordKey, data)
	if err != nil {
		return fmt.Errorf("write progress record: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. COURSEDECK_DB environment variable
// 2. $XDG_DATA_HOME/coursedeck/coursedeck.db
// 3. ~/.local/share/coursedeck/coursedeck.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("COURSEDECK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "coursedeck", "coursedeck.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
