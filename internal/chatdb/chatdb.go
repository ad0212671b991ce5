// Package chatdb provides read-only access to a macOS Messages history
// database (chat.db). It owns the connection lifecycle and exposes the two
// read operations the exporter needs: thread enumeration and per-thread
// message retrieval with optional date bounds.
package chatdb

import (
	"database/sql"
	"net/url"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// DB is a handle to one Messages database, opened strictly read-only.
// A DB is used sequentially by a single invocation; it is not safe for
// concurrent use and is never pooled or shared.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens the Messages database at path read-only and immutable.
// Immutable mode keeps SQLite from touching the journal or checkpointing,
// which matters because Messages.app may have the store open with a live
// WAL at the same time. Returns *OpenError when the file is missing or
// cannot be opened; schema problems surface lazily on the first query.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	// Use a file: URI so paths containing '?' or '#' survive DSN parsing.
	dsn := (&url.URL{
		Scheme:   "file",
		OmitHost: true,
		Path:     path,
		RawQuery: "mode=ro&immutable=1",
	}).String()
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	return &DB{db: db, path: path}, nil
}

// Close releases the underlying connection and any OS-level read locks.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the database file path the handle was opened with.
func (d *DB) Path() string {
	return d.path
}
