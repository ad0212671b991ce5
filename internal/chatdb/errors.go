package chatdb

import "fmt"

// OpenError reports that the Messages database could not be opened
// read-only (missing file, permission denied, incompatible lock). It is
// fatal for the session; any retry policy belongs to the caller.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open messages database %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// QueryError reports that preparing or executing a read query failed,
// typically a schema mismatch or an I/O error mid-read. A failing query
// returns no rows and a QueryError, never a truncated result.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
